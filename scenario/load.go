package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

const maxScenarioFileSize = 1024 * 1024 // 1MB

// file mirrors the YAML scenario layout.
type file struct {
	Map       string  `koanf:"map"`
	Algorithm string  `koanf:"algorithm"`
	Width     int     `koanf:"width"`
	Height    int     `koanf:"height"`
	Start     []int   `koanf:"start"`
	Goal      []int   `koanf:"goal"`
	Obstacles [][]int `koanf:"obstacles"`
}

// Load reads a YAML scenario file. Files with a .txt or .map extension are
// treated as bare text maps.
func Load(path string) (*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if info.Size() > maxScenarioFileSize {
		return nil, fmt.Errorf("scenario: %s is %d bytes, limit %d", path, info.Size(), maxScenarioFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".map":
		return Parse(string(content))
	}

	return LoadYAML(content)
}

// LoadYAML decodes a YAML scenario. An embedded map takes precedence over
// width/height/start/goal/obstacles. Without an algorithm key the scenario
// falls back to search.AStar with HasAlgorithm false.
func LoadYAML(content []byte) (*Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("scenario: parse yaml: %w", err)
	}
	var f file
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("scenario: decode yaml: %w", err)
	}

	alg := search.AStar
	named := f.Algorithm != ""
	if named {
		a, err := search.ParseAlgorithm(f.Algorithm)
		if err != nil {
			return nil, err
		}
		alg = a
	}

	if f.Map != "" {
		s, err := Parse(f.Map)
		if err != nil {
			return nil, err
		}
		s.Algorithm, s.HasAlgorithm = alg, named
		return s, nil
	}

	g, err := gridgraph.New(f.Width, f.Height)
	if err != nil {
		return nil, err
	}
	s := &Scenario{Grid: g, Algorithm: alg, HasAlgorithm: named}
	if s.Start, err = point(g, f.Start, "start"); err != nil {
		return nil, err
	}
	if s.Goal, err = point(g, f.Goal, "goal"); err != nil {
		return nil, err
	}
	for i, raw := range f.Obstacles {
		p, err := point(g, raw, fmt.Sprintf("obstacles[%d]", i))
		if err != nil {
			return nil, err
		}
		_ = g.SetObstacle(p, true)
	}

	return s, nil
}

// point converts an [x, y] pair and checks it lies on g.
func point(g *gridgraph.Grid, raw []int, field string) (gridgraph.Point, error) {
	if len(raw) != 2 {
		return gridgraph.Point{}, fmt.Errorf("%w: %s = %v", ErrBadPoint, field, raw)
	}
	p := gridgraph.Point{X: raw[0], Y: raw[1]}
	if !g.InBounds(p) {
		return gridgraph.Point{}, fmt.Errorf("scenario: %s: %w: %s", field, gridgraph.ErrOutOfBounds, p)
	}

	return p, nil
}
