package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/maruel/natural"

	"rectpacksolver/bench"
	"rectpacksolver/packing"
)

const VERSION = "0.1.0"

// benchmarkNs 是默认运行的 Korf 基准规模列表。
var benchmarkNs = []int{3, 4, 5, 6, 7}

type Options struct {
	SolverName string // 求解器名称 (DFS, BottomLeft)
	OutputDir  string // 输出目录
	SavePNG    bool   // 是否输出 PNG 布局图
	SavePDF    bool   // 是否输出 PDF 布局图
	SaveJSON   bool   // 是否输出 JSON 结果
	RunPRP     bool   // 是否运行 PRP 演示
	PRPWidth   int    // PRP 容器宽度
	PRPHeight  int    // PRP 容器高度
	PRPCount   int    // PRP 矩形数量
	Seed       int64  // PRP 生成器随机种子
	InputDir   string // 实例文件目录（*.txt）
	PixelScale int    // PNG 每单位像素数
}

var options Options

func printElapsed(t time.Duration) {
	switch {
	case t < time.Microsecond:
		fmt.Printf("耗时: %d ns\n", t.Nanoseconds())
	case t < time.Millisecond:
		fmt.Printf("耗时: %.2f µs\n", float64(t.Nanoseconds())/1e3)
	case t < time.Second:
		fmt.Printf("耗时: %.2f ms\n", float64(t.Nanoseconds())/1e6)
	default:
		fmt.Printf("耗时: %.2f s\n", t.Seconds())
	}
}

// printDFSStats 输出 DFS 搜索统计。
func printDFSStats(st packing.DFSStats) {
	total := st.AreaPrunes + st.SymmetrySkips + st.BoundPrunes
	fmt.Printf("    探索节点数      : %d\n", st.Explored)
	fmt.Printf("    面积剪枝        : %d\n", st.AreaPrunes)
	fmt.Printf("    对称性跳过      : %d\n", st.SymmetrySkips)
	fmt.Printf("    bounding 剪枝   : %d\n", st.BoundPrunes)
	if st.Explored > 0 {
		fmt.Printf("    剪枝率          : %.1f%%\n", 100*float64(total)/float64(st.Explored))
	}
}

// printPRPStats 输出 PRP 搜索统计。
func printPRPStats(st packing.PRPStats) {
	total := st.EmptyValleyPrunes + st.AreaPrunes + st.PropagationPrunes + st.DeadSpacePrunes
	fmt.Printf("    探索节点数       : %d\n", st.Explored)
	fmt.Printf("    空山谷剪枝       : %d\n", st.EmptyValleyPrunes)
	fmt.Printf("    面积剪枝 (R1)    : %d\n", st.AreaPrunes)
	fmt.Printf("    传播剪枝 (R3)    : %d\n", st.PropagationPrunes)
	fmt.Printf("    死区剪枝 (R4)    : %d\n", st.DeadSpacePrunes)
	if st.Explored > 0 {
		fmt.Printf("    剪枝率           : %.1f%%\n", 100*float64(total)/float64(st.Explored))
	}
}

// saveArtifacts 按选项输出 PNG / PDF / JSON 结果文件。
func saveArtifacts(sol packing.Solver, name, title string) {
	if options.SavePNG {
		path := filepath.Join(options.OutputDir, name+".png")
		if err := RenderSolutionPNG(sol, path, options.PixelScale); err != nil {
			fmt.Printf("写入 PNG 失败: %v\n", err)
		} else {
			fmt.Printf("    已写入 %s\n", path)
		}
	}
	if options.SavePDF {
		path := filepath.Join(options.OutputDir, name+".pdf")
		if err := ExportSolutionPDF(sol, title, path); err != nil {
			fmt.Printf("写入 PDF 失败: %v\n", err)
		} else {
			fmt.Printf("    已写入 %s\n", path)
		}
	}
	if options.SaveJSON {
		path := filepath.Join(options.OutputDir, name+".json")
		if err := WriteSolutionJSON(sol, path); err != nil {
			fmt.Printf("写入 JSON 失败: %v\n", err)
		} else {
			fmt.Printf("    已写入 %s\n", path)
		}
	}
}

// searchModeFor 根据求解器选择候选容器的生成策略。
func searchModeFor(solverName string) packing.SearchMode {
	if solverName == "BottomLeft" {
		return packing.SearchGreedy
	}
	return packing.SearchExact
}

// runKorf 对规模 n 的 Korf 基准运行一次最优容器搜索。
func runKorf(n int) {
	fmt.Printf("Korf 基准: N=%d, %s\n", n, options.SolverName)

	squares := bench.KorfSquares(n)
	fmt.Printf("    正方形总面积: %d\n", bench.TotalArea(squares))

	start := time.Now()

	search, err := packing.NewContainerSearch(squares, searchModeFor(options.SolverName),
		func(w, h int) (packing.Solver, error) {
			return packing.ResolveSolver(options.SolverName, w, h)
		})
	if err != nil {
		fmt.Printf("创建搜索失败: %v\n", err)
		return
	}

	dims, sol, ok := search.Find(packing.OrderDecreasing)
	if !ok {
		fmt.Println("    候选容器中没有找到解")
		printElapsed(time.Since(start))
		fmt.Println()
		return
	}

	area := dims.Area()
	fmt.Printf("    找到解: 容器 %d×%d (面积 %d)\n", dims.Width, dims.Height, area)
	fmt.Printf("    浪费: %d (%.2f%%)\n", sol.Wasted(), 100*float64(sol.Wasted())/float64(area))
	if dfs, isDFS := sol.(*packing.DFSSolver); isDFS {
		printDFSStats(dfs.Stats())
	}
	printElapsed(time.Since(start))

	saveArtifacts(sol, fmt.Sprintf("korf_%s_n%d", options.SolverName, n),
		fmt.Sprintf("%s - Korf N=%d", options.SolverName, n))
	fmt.Println()
}

// runPRP 生成并求解一个 Perfect Rectangle Packing 实例。
func runPRP() {
	gen := bench.NewPRPGenerator(options.PRPWidth, options.PRPHeight, options.PRPCount,
		options.Seed, 2, 0.2)
	fmt.Println(gen.Info())
	if err := gen.VerifyPartition(); err != nil {
		fmt.Printf("生成的分割非法: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	solver, err := packing.NewPRPSolver(options.PRPWidth, options.PRPHeight)
	if err != nil {
		fmt.Printf("创建求解器失败: %v\n", err)
		os.Exit(1)
	}

	if solver.Pack(gen.Shuffled(), packing.OrderDecreasing) {
		fmt.Println("    DFS 找到完美铺满")
		printPRPStats(solver.Stats())
		saveArtifacts(solver, fmt.Sprintf("prp_%dx%d_n%d", options.PRPWidth, options.PRPHeight, options.PRPCount),
			fmt.Sprintf("PRP - %dx%d, %d rects", options.PRPWidth, options.PRPHeight, options.PRPCount))
	} else {
		fmt.Println("    没有找到完美铺满")
		printPRPStats(solver.Stats())
	}
	printElapsed(time.Since(start))
	fmt.Println()
}

// runInstances 按自然文件名顺序处理目录中的实例文件。
// 面积恰好等于容器面积的实例走 PRP 求解器，其余走 DFS 判定可行性。
func runInstances(dir string) {
	pattern := filepath.Join(dir, "*.txt")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Printf("读取实例目录失败: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Printf("目录 %s 中没有找到实例文件\n", dir)
		os.Exit(1)
	}
	sort.Sort(natural.StringSlice(paths))
	fmt.Printf("找到 %d 个实例文件\n\n", len(paths))

	for _, path := range paths {
		ins, err := bench.LoadInstance(path)
		if err != nil {
			fmt.Printf("%s: %v\n\n", path, err)
			continue
		}
		fmt.Printf("实例 %s: 容器 %d×%d, %d 个矩形\n",
			filepath.Base(path), ins.Width, ins.Height, len(ins.Sizes))

		start := time.Now()
		name := "instance_" + trimExt(filepath.Base(path))

		if ins.IsPerfect() {
			solver, err := packing.NewPRPSolver(ins.Width, ins.Height)
			if err != nil {
				fmt.Printf("创建求解器失败: %v\n\n", err)
				continue
			}
			if solver.Pack(ins.Sizes, packing.OrderDecreasing) {
				fmt.Println("    PRP: 完美铺满")
				printPRPStats(solver.Stats())
				saveArtifacts(solver, name, filepath.Base(path))
			} else {
				fmt.Println("    PRP: 无解")
				printPRPStats(solver.Stats())
			}
		} else {
			solver, err := packing.NewDFSSolver(ins.Width, ins.Height)
			if err != nil {
				fmt.Printf("创建求解器失败: %v\n\n", err)
				continue
			}
			if solver.Pack(ins.Sizes, packing.OrderDecreasing) {
				fmt.Printf("    DFS: 可行, 浪费 %d\n", solver.Wasted())
				printDFSStats(solver.Stats())
				saveArtifacts(solver, name, filepath.Base(path))
			} else {
				fmt.Println("    DFS: 不可行")
				printDFSStats(solver.Stats())
			}
		}
		printElapsed(time.Since(start))
		fmt.Println()
	}
}

// trimExt 去掉文件名的扩展名。
func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

func main() {
	solverPtr := flag.String("solver", "DFS", "求解器 (DFS, BottomLeft)")
	outputPtr := flag.String("output", "output", "输出目录")
	pngPtr := flag.Bool("png", true, "输出 PNG 布局图")
	pdfPtr := flag.Bool("pdf", false, "输出 PDF 布局图")
	jsonPtr := flag.Bool("json", true, "输出 JSON 结果")
	prpPtr := flag.Bool("prp", false, "运行 PRP 演示而不是 Korf 基准")
	prpWidthPtr := flag.Int("prp-width", 20, "PRP 容器宽度")
	prpHeightPtr := flag.Int("prp-height", 15, "PRP 容器高度")
	prpCountPtr := flag.Int("prp-count", 20, "PRP 矩形数量")
	seedPtr := flag.Int64("seed", 42, "PRP 生成器随机种子")
	inputPtr := flag.String("input", "", "实例文件目录 (*.txt)，指定后忽略其他模式")
	scalePtr := flag.Int("scale", 32, "PNG 每单位像素数")
	flag.Parse()

	options = Options{
		SolverName: *solverPtr,
		OutputDir:  *outputPtr,
		SavePNG:    *pngPtr,
		SavePDF:    *pdfPtr,
		SaveJSON:   *jsonPtr,
		RunPRP:     *prpPtr,
		PRPWidth:   *prpWidthPtr,
		PRPHeight:  *prpHeightPtr,
		PRPCount:   *prpCountPtr,
		Seed:       *seedPtr,
		InputDir:   *inputPtr,
		PixelScale: *scalePtr,
	}

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		fmt.Printf("创建输出目录失败: %v\n", err)
		os.Exit(1)
	}

	switch {
	case options.InputDir != "":
		runInstances(options.InputDir)
	case options.RunPRP:
		runPRP()
	default:
		for _, n := range benchmarkNs {
			runKorf(n)
		}
	}
}
