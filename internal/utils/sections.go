// Package utils holds small formatting helpers used by the solver
// package.
package utils

import (
	"sort"
	"strings"
)

// GroupKey builds a stable, order-independent key identifying a set of
// IDs — used by the soft-cost evaluator to group a (class, subject)
// pair's sessions for the session-spread term (P6).
func GroupKey(ids []string) string {
	if len(ids) == 0 {
		return "empty"
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "-")
}
