// Package analytics computes longitudinal statistics over a collection of
// journal entries: emotion distribution, sentiment over time, a
// word/sentiment map, writing habit patterns, and mood correlations.
//
// Every sub-analysis handles the empty collection by returning its defined
// empty shape; none of them can fail. The engine holds no state between
// calls.
package analytics
