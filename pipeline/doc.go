// SPDX-License-Identifier: MIT

// Package pipeline composes the golden model end to end:
//
//	calibrate → quantize → multiply → activate → stream
//
// RunFloat is the quantized path: float operands are calibrated per matrix,
// quantized to the configured element width, multiplied with gemm.Mul and
// clipped with ReLU. The float reference product is computed alongside so the
// two can be compared. RunInt is the direct integer path used when the
// stimulus is already in the element domain.
//
// Every intermediate is kept in Result so the report and vector packages can
// consume the same run without recomputing anything. Stages never modify
// their inputs.
package pipeline
