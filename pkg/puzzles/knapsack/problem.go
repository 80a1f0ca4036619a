package knapsack

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadProblem is returned when a problem definition does not describe a
// usable instance.
var ErrBadProblem = errors.New("knapsack: bad problem definition")

// Problem is the YAML shape of a knapsack instance:
//
//	capacity: 10
//	target: 15
//	items:
//	  - {name: tent, weight: 4, value: 6}
//	  - {name: stove, weight: 3, value: 5}
type Problem struct {
	Capacity int    `yaml:"capacity"`
	Target   int    `yaml:"target"`
	Items    []Item `yaml:"items"`
}

// ParseProblem decodes a YAML problem definition into a fresh Selection.
func ParseProblem(data []byte) (*Selection, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProblem, err)
	}
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrBadProblem)
	}
	if p.Capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity", ErrBadProblem)
	}
	for i, it := range p.Items {
		if it.Weight < 0 || it.Value < 0 {
			return nil, fmt.Errorf("%w: item %d has negative weight or value", ErrBadProblem, i)
		}
	}
	return New(p.Items, p.Capacity, p.Target), nil
}

// LoadProblem reads a YAML problem definition from disk.
func LoadProblem(path string) (*Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	return ParseProblem(data)
}
