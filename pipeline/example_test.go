// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/pipeline"
	"github.com/katalvlaran/systolic/stimulus"
)

// ExampleRunInt runs the deterministic integer pattern through the model and
// prints the activated output in the order the array streams it.
func ExampleRunInt() {
	cfg := accel.Default()
	res, err := pipeline.RunInt(cfg, stimulus.IntPattern(4), stimulus.IntPattern(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.AccWidth.Required, res.AccWidth.Configured)
	fmt.Println(res.Stream)
	// Output:
	// 18 22
	// [0 0 6 19 0 0 1 10 0 0 3 0 0 0 0 2]
}
