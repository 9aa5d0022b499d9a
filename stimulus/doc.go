// Package stimulus supplies the operand matrices fed to the golden model,
// using "functional-options"-style configuration.
//
// The package offers:
//
//   - Fixed patterns (no RNG): IntPattern and FloatPattern, the hand-written
//     default stimuli (a signed Toeplitz-like grid with a
//     positive diagonal).
//   - A seeded Source that draws uniform integer or float operands, or falls
//     back to the patterns when no RNG is configured.
//
// Guarantees:
//
//   - Determinism: identical seed and options yield identical matrices,
//     drawn A first, then B, each in row-major order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Invalid geometry is reported as an error by New.
package stimulus
