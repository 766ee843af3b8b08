package scoring

import (
	"aftas/repository"
	"sort"
)

// HuntingPoints is the contribution of one catch record to a competitor's score.
func HuntingPoints(levelPoints int, numberOfFish int) int {
	return levelPoints * numberOfFish
}

// AssignRanks orders rankings by score descending and numbers them 1..N.
// Equal scores keep their incoming order, so the result only depends on the store order.
func AssignRanks(rankings []*repository.Ranking) []*repository.Ranking {
	sorted := make([]*repository.Ranking, len(rankings))
	copy(sorted, rankings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	for i, ranking := range sorted {
		ranking.Rank = i + 1
	}
	return sorted
}

// Podium returns up to size ranked entries ordered by rank. Unranked entries (rank 0) are skipped.
func Podium(rankings []*repository.Ranking, size int) []*repository.Ranking {
	ranked := make([]*repository.Ranking, 0, len(rankings))
	for _, ranking := range rankings {
		if ranking.Rank > 0 {
			ranked = append(ranked, ranking)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rank < ranked[j].Rank
	})
	if len(ranked) > size {
		ranked = ranked[:size]
	}
	return ranked
}
