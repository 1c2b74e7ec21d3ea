package bnb

import (
	"math"
	"testing"
)

func workedInstance() *Instance {
	return &Instance{
		Items:    []Item{{Value: 10, Weight: 5}, {Value: 6, Weight: 3}, {Value: 8, Weight: 4}},
		Capacity: 8,
	}
}

func TestRelaxedSolution_ValueAndWeight(t *testing.T) {
	inst := workedInstance()
	rs := &RelaxedSolution{Instance: inst, Selection: []float64{1, 0.5, 0}, Objective: 13, Feasible: true}
	if got := rs.Value(); got != 13 {
		t.Errorf("Value: got %g, want 13", got)
	}
	if got := rs.Weight(); got != 6.5 {
		t.Errorf("Weight: got %g, want 6.5", got)
	}
}

func TestRelaxedSolution_IsIntegral(t *testing.T) {
	inst := workedInstance()
	integral := &RelaxedSolution{Instance: inst, Selection: []float64{1, 0, 1}, Objective: 18, Feasible: true}
	if !integral.IsIntegral() {
		t.Error("0/1 selection not reported integral")
	}
	fractional := &RelaxedSolution{Instance: inst, Selection: []float64{1, 0.5, 0}, Objective: 13, Feasible: true}
	if fractional.IsIntegral() {
		t.Error("fractional selection reported integral")
	}
}

func TestRelaxedSolution_ObeysCapacity(t *testing.T) {
	inst := workedInstance()
	within := &RelaxedSolution{Instance: inst, Selection: []float64{1, 1, 0}, Objective: 16, Feasible: true}
	if !within.ObeysCapacity() {
		t.Error("weight-8 selection under capacity 8 rejected")
	}
	over := &RelaxedSolution{Instance: inst, Selection: []float64{1, 0, 1}, Objective: 18, Feasible: true}
	if over.ObeysCapacity() {
		t.Error("weight-9 selection over capacity 8 accepted")
	}
}

func TestNewInfeasibleRelaxation_Sentinel(t *testing.T) {
	inst := workedInstance()
	rs := NewInfeasibleRelaxation(inst)
	if rs.Feasible {
		t.Error("infeasible marker reports feasible")
	}
	if !math.IsInf(rs.Objective, -1) {
		t.Errorf("infeasible objective: got %g, want -Inf", rs.Objective)
	}
	if rs.IsIntegral() || rs.ObeysCapacity() {
		t.Error("infeasible marker must fail integrality and capacity checks")
	}
	if len(rs.Selection) != inst.NumItems() {
		t.Errorf("selection length: got %d, want %d", len(rs.Selection), inst.NumItems())
	}
}

func TestRelaxedSolution_String(t *testing.T) {
	inst := workedInstance()
	rs := &RelaxedSolution{Instance: inst, Selection: []float64{1, 0.5, 0}, Objective: 13, Feasible: true}
	if got := rs.String(); got != "[1|0.5|0]" {
		t.Errorf("String: got %q, want %q", got, "[1|0.5|0]")
	}
}
