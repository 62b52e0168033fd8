// Package digest merges per-source records into one ranked, capped list.
package digest

import (
	"sort"

	"go-jobradar/internal/collector"
)

// Digest is the aggregated outcome of a run.
type Digest struct {
	Records []collector.Record // ranked and capped
	Total   int                // match count after dedup, before the cap
}

// Build deduplicates by URL, ranks by tier weight descending and truncates
// to limit (0 means uncapped).
//
// Dedup keeps the first-seen position but the last-seen record for each
// URL, so a later source overwrites an earlier duplicate without
// reshuffling the list. The weight sort is stable over that order.
func Build(records []collector.Record, limit int) Digest {
	index := make(map[string]int, len(records))
	unique := make([]collector.Record, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.URL]; ok {
			unique[i] = r
			continue
		}
		index[r.URL] = len(unique)
		unique = append(unique, r)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Tier.Weight > unique[j].Tier.Weight
	})

	total := len(unique)
	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}

	return Digest{Records: unique, Total: total}
}
