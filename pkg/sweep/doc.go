// Package sweep counts how many left-to-right passes it takes to collect a
// sequence of distinct positive integers in ascending order.
//
// # Passes
//
// A pass scans the whole sequence once. Every position holding the next
// expected value (placed+1 at the moment it is visited) is collected, so a
// single pass can take several consecutive values when they appear in
// increasing positional order:
//
//	[3 1 4 2 5]  pass 1 collects 1 2, pass 2 collects 3 4 5  => 2
//	[5 3 4 1 2]  pass 1 collects 1 2, pass 2 collects 3 4, pass 3 collects 5 => 3
//
// For a permutation of 1..N the count is between 1 and N. An empty sequence
// needs no passes.
//
// # Malformed input
//
// If a full pass collects nothing while values are still missing (gaps,
// duplicates, zero or negative values), the next expected value can never be
// found. Instead of scanning forever, the sweep stops with a NO_PROGRESS error
// carrying the placed count and the missing value.
package sweep
