// Package collections decides which curated collections are live and which
// are still "coming soon". A collection goes live once the businesses matching
// its tag and category filter meet its configured minimum.
package collections

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// TagCounter supplies, for a set of eligible category slugs, the number of
// matching businesses per tag. The businesses store implements this with a
// grouped aggregation; tests supply a map.
type TagCounter interface {
	CountByTag(ctx context.Context, categorySlugs []string) (map[string]int, error)
}

// Status is a collection paired with its resolved match count.
type Status struct {
	Collection models.Collection
	Count      int
	Live       bool
}

// Partition is the live / coming-soon split over a set of collections.
type Partition struct {
	Live       []Status
	ComingSoon []Status
}

// Resolve computes the live/coming-soon partition for the given collections.
//
// The count for a collection is the sum of per-tag counts across its tag list.
// A business carrying more than one of the collection's tags is counted once
// per tag; the threshold check deliberately works on this approximate sum
// rather than a deduplicated match count.
//
// If the counter fails, every count is treated as zero: pages render with all
// collections "coming soon" rather than erroring.
func Resolve(ctx context.Context, defs []models.Collection, counter TagCounter, logger *zap.Logger) Partition {
	var p Partition
	for _, def := range defs {
		st := resolveOne(ctx, def, counter, logger)
		if st.Live {
			p.Live = append(p.Live, st)
		} else {
			p.ComingSoon = append(p.ComingSoon, st)
		}
	}

	sortStatuses(p.Live)
	sortStatuses(p.ComingSoon)
	return p
}

// ResolveOne computes the status of a single collection.
func ResolveOne(ctx context.Context, def models.Collection, counter TagCounter, logger *zap.Logger) Status {
	return resolveOne(ctx, def, counter, logger)
}

func resolveOne(ctx context.Context, def models.Collection, counter TagCounter, logger *zap.Logger) Status {
	counts, err := counter.CountByTag(ctx, def.CategorySlugs)
	if err != nil {
		logger.Warn("tag count aggregation failed; treating collection counts as zero",
			zap.String("collection", def.Slug),
			zap.Error(err))
		return Status{Collection: def}
	}

	total := 0
	for _, tag := range def.Tags {
		total += counts[tag]
	}

	return Status{
		Collection: def,
		Count:      total,
		Live:       total >= def.MinListings,
	}
}

// sortStatuses orders by priority weight descending, then title for stability.
func sortStatuses(s []Status) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Collection.Priority != s[j].Collection.Priority {
			return s[i].Collection.Priority > s[j].Collection.Priority
		}
		return s[i].Collection.Title < s[j].Collection.Title
	})
}
