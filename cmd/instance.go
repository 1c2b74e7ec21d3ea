package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnbkit/bnbkit/bnb"
)

// InstanceFile mirrors the YAML schema for problem instances:
//
//	capacity: 8
//	items:
//	  - {value: 10, weight: 5}
//	  - {value: 6, weight: 3}
type InstanceFile struct {
	Capacity float64    `yaml:"capacity"`
	Items    []ItemSpec `yaml:"items"`
}

// ItemSpec is one item entry in an instance file.
type ItemSpec struct {
	Value  float64 `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// LoadInstance reads, parses, and validates a YAML instance file.
func LoadInstance(path string) (*bnb.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file: %w", err)
	}
	var file InstanceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing instance file: %w", err)
	}
	items := make([]bnb.Item, len(file.Items))
	for i, spec := range file.Items {
		items[i] = bnb.Item{Value: spec.Value, Weight: spec.Weight}
	}
	inst := &bnb.Instance{Items: items, Capacity: file.Capacity}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}
