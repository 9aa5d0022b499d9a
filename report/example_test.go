// SPDX-License-Identifier: MIT

package report_test

import (
	"os"

	"github.com/katalvlaran/systolic/report"
	"github.com/katalvlaran/systolic/selfcheck"
)

// ExampleChecks prints a self-check summary.
func ExampleChecks() {
	_ = report.Checks(os.Stdout, []selfcheck.Result{
		{Name: "range_clipping", Passed: true},
		{Name: "scaling", Passed: true},
	})
	// Output:
	// ========================================
	//   Quantization Verification Testbench
	// ========================================
	//
	// [PASS] range_clipping
	// [PASS] scaling
	//
	// Results: 2 passed, 0 failed
}
