package bnb

import (
	"errors"
	"testing"
)

func TestInstanceValidate_Valid(t *testing.T) {
	inst := &Instance{
		Items:    []Item{{Value: 10, Weight: 5}, {Value: 0, Weight: 0}},
		Capacity: 8,
	}
	if err := inst.Validate(); err != nil {
		t.Errorf("valid instance rejected: %v", err)
	}
}

func TestInstanceValidate_NegativeCapacity(t *testing.T) {
	inst := &Instance{Items: []Item{{Value: 1, Weight: 1}}, Capacity: -1}
	err := inst.Validate()
	if err == nil {
		t.Fatal("negative capacity accepted")
	}
	if !errors.Is(err, ErrMalformedInstance) {
		t.Errorf("error should wrap ErrMalformedInstance, got %v", err)
	}
}

func TestInstanceValidate_NegativeItemFields(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"negative value", Item{Value: -3, Weight: 1}},
		{"negative weight", Item{Value: 3, Weight: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := &Instance{Items: []Item{{Value: 1, Weight: 1}, tc.item}, Capacity: 10}
			err := inst.Validate()
			if err == nil {
				t.Fatal("malformed item accepted")
			}
			if !errors.Is(err, ErrMalformedInstance) {
				t.Errorf("error should wrap ErrMalformedInstance, got %v", err)
			}
		})
	}
}

func TestInstanceValidate_RejectedBeforeSearch(t *testing.T) {
	inst := &Instance{Items: []Item{{Value: -1, Weight: 1}}, Capacity: 5}
	if _, err := NewSearch(inst, SearchConfig{}); err == nil {
		t.Error("NewSearch accepted a malformed instance")
	}
	if _, err := Solve(inst, SearchConfig{}); err == nil {
		t.Error("Solve accepted a malformed instance")
	}
}
