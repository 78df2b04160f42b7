package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rectpacksolver/packing"
)

// Instance 是一个待求解的装箱实例：容器尺寸加矩形列表。
type Instance struct {
	// Width 是容器宽度。
	Width int
	// Height 是容器高度。
	Height int
	// Sizes 是待放置的矩形，ID 按文件中的出现顺序从 1 开始编号。
	Sizes []packing.Size
}

// TotalArea 返回实例中矩形的面积之和。
func (ins *Instance) TotalArea() int {
	return TotalArea(ins.Sizes)
}

// IsPerfect 报告矩形面积之和是否恰好等于容器面积。
func (ins *Instance) IsPerfect() bool {
	return ins.TotalArea() == ins.Width*ins.Height
}

// ParseInstance 从文本读取实例。格式：第一行是容器的 "宽 高"，
// 之后每行一个矩形的 "宽 高"，空行忽略。
func ParseInstance(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	ins := &Instance{}
	first := true
	id := 1
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: need two fields, got %q", line, text)
		}
		w, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing width: %w", line, err)
		}
		h, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing height: %w", line, err)
		}
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("line %d: dimensions must be positive, got %dx%d", line, w, h)
		}
		if first {
			ins.Width = w
			ins.Height = h
			first = false
			continue
		}
		ins.Sizes = append(ins.Sizes, packing.NewSizeID(id, w, h))
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if first {
		return nil, fmt.Errorf("empty instance")
	}
	if len(ins.Sizes) == 0 {
		return nil, fmt.Errorf("instance has no rectangles")
	}
	return ins, nil
}

// LoadInstance 从文件读取实例。
func LoadInstance(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ins, err := ParseInstance(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ins, nil
}
