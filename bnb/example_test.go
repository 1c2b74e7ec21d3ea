package bnb_test

import (
	"fmt"

	"github.com/bnbkit/bnbkit/bnb"
)

func ExampleSolve() {
	inst := &bnb.Instance{
		Items: []bnb.Item{
			{Value: 10, Weight: 5},
			{Value: 6, Weight: 3},
			{Value: 8, Weight: 4},
		},
		Capacity: 8,
	}
	result, err := bnb.Solve(inst, bnb.SearchConfig{
		Relaxation: bnb.FractionalRelaxation{},
		Branching:  bnb.BestDensityBranching{},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Status, result.BestValue)
	// Output: optimal 16
}
