package searcher

import (
	"fmt"
	"slices"
)

type Option func(a *Analyzer)

// WithMetrics records discovery and evaluation counts for every nimber query.
func WithMetrics() Option {
	return func(a *Analyzer) {
		a.metrics = NewMetricsCollector()
	}
}

// WithCollector installs a custom collector; nil keeps the default.
func WithCollector(collector MetricsCollector) Option {
	return func(a *Analyzer) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// Mex returns the smallest non-negative integer absent from values. values is
// sorted in place.
func Mex(values []int) int {
	slices.Sort(values)
	result := 0
	for _, v := range values {
		if v < 0 {
			panic(fmt.Sprintf("cannot compute mex: negative value %d", v))
		}
		if v == result {
			result++
		}
	}
	return result
}

// NimSum XORs nimbers together.
func NimSum(nimbers ...int) int {
	sum := 0
	for _, n := range nimbers {
		sum ^= n
	}
	return sum
}
