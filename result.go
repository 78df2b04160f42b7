package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"rectpacksolver/packing"
)

// PlacementInfo 是 JSON 结果中的一条放置记录。
type PlacementInfo struct {
	ID     int `json:"id"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SolutionResult 是一次求解的 JSON 结果。
type SolutionResult struct {
	Meta struct {
		Version   string `json:"version"`
		Timestamp string `json:"timestamp"`
	} `json:"meta"`
	Container struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"container"`
	Wasted     int             `json:"wasted"`
	Placements []PlacementInfo `json:"placements"`
}

// NewSolutionResult 从求解器状态构造结果对象。
func NewSolutionResult(sol packing.Solver) *SolutionResult {
	result := &SolutionResult{}
	result.Meta.Version = VERSION
	result.Meta.Timestamp = time.Now().Format("2006-01-02 15:04:05")

	c := sol.Container()
	result.Container.Width = c.Width
	result.Container.Height = c.Height
	result.Wasted = sol.Wasted()

	for _, r := range sol.Placed() {
		result.Placements = append(result.Placements, PlacementInfo{
			ID:     r.ID,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return result
}

// WriteSolutionJSON 把求解结果写为 JSON 文件。
func WriteSolutionJSON(sol packing.Solver, path string) error {
	data, err := json.MarshalIndent(NewSolutionResult(sol), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSolutionJSON 读取之前写出的 JSON 结果。
func ReadSolutionJSON(path string) (*SolutionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result SolutionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &result, nil
}

// Verify 校验结果文件中的放置：每个矩形在容器内，两两不重叠。
func (r *SolutionResult) Verify() error {
	w, h := r.Container.Width, r.Container.Height
	if w < 1 || h < 1 {
		return fmt.Errorf("invalid container %dx%d", w, h)
	}
	for i, p := range r.Placements {
		if p.Width < 1 || p.Height < 1 {
			return fmt.Errorf("placement %d: invalid dimensions %dx%d", p.ID, p.Width, p.Height)
		}
		if p.X < 0 || p.Y < 0 || p.X+p.Width > w || p.Y+p.Height > h {
			return fmt.Errorf("placement %d: out of bounds", p.ID)
		}
		for _, q := range r.Placements[i+1:] {
			if p.X < q.X+q.Width && q.X < p.X+p.Width &&
				p.Y < q.Y+q.Height && q.Y < p.Y+p.Height {
				return fmt.Errorf("placements %d and %d overlap", p.ID, q.ID)
			}
		}
	}
	return nil
}
