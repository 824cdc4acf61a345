package mem

import (
	"strings"

	"github.com/pengdafu/adt/diag"
	"gopkg.in/yaml.v3"
)

const (
	StrategyHeap  = "heap"
	StrategyArena = "arena"
)

// Config describes an allocator in YAML:
//
//	strategy: arena
//	budget: 65536
//	track: true
type Config struct {
	Strategy string `yaml:"strategy"`
	Budget   uint64 `yaml:"budget"`
	Track    bool   `yaml:"track"`
}

func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, diag.Wrap(diag.InvalidArgf("%v", err), "parse allocator config")
	}
	return c, nil
}

// Build returns the allocator c describes. An empty strategy means heap.
func (c Config) Build() (Allocator, error) {
	var a Allocator
	switch strings.ToLower(c.Strategy) {
	case "", StrategyHeap:
		a = NewHeap()
	case StrategyArena:
		if c.Budget == 0 {
			return nil, diag.InvalidArgf("arena strategy needs a budget")
		}
		a = NewArena(c.Budget)
	default:
		return nil, diag.InvalidArgf("unknown allocation strategy %q", c.Strategy)
	}
	if c.Track {
		a = NewTracking(a)
	}
	return a, nil
}
