// SPDX-License-Identifier: MIT

// Package report renders pipeline results, vector summaries and self-check
// outcomes as human-readable text. The layout is for people reading a
// terminal; scripts should consume the vectors package instead.
package report
