// Package explore computes the summary statistics behind the exploration
// views: per-column numeric profiles, categorical frequency summaries, and
// pairwise-complete Pearson correlation. Wide frames fan the per-column
// work out over the CPU cores.
package explore

// parallelRowThreshold is the row count above which per-column statistics
// run on worker goroutines instead of a plain loop.
const parallelRowThreshold = 10000
