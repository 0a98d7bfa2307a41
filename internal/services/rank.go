package services

import (
	"sort"

	"trip-match-service/internal/domain"
)

// RankByDetour orders match results with routed detours first, ascending by
// duration, followed by every unroutable result in original input order.
// The output is a permutation of the input: no result is dropped or
// duplicated, and the input slice is left untouched.
func RankByDetour(results []domain.MatchResult) []domain.MatchResult {
	ranked := make([]domain.MatchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Detour.Less(ranked[j].Detour)
	})

	return ranked
}
