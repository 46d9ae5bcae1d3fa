// Package importing loads business listings from CSV exports. The expected
// layout is a header row followed by one business per line:
//
//	name,category,address,postcode,lat,lng,phone,website,price_range
//
// The category column accepts either a category slug ("pubs-bars") or its
// display name ("Pubs & Bars"). Rows that cannot be imported are skipped and
// counted; a bad row never aborts the run.
package importing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/app/system/normalize"
	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// expectedHeader is the required CSV column layout, in order.
var expectedHeader = []string{
	"name", "category", "address", "postcode", "lat", "lng", "phone", "website", "price_range",
}

// BusinessWriter is the slice of the businesses store the importer needs.
type BusinessWriter interface {
	Upsert(ctx context.Context, b models.Business) error
}

// CategoryLookup resolves the seeded categories once per run.
type CategoryLookup interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

// Summary reports the outcome of one import run.
type Summary struct {
	Rows     int // data rows read, excluding the header
	Imported int
	Skipped  int // rows with a missing name or unknown category
	Failed   int // rows whose upsert failed
}

// Importer parses CSV rows and upserts them keyed by slug, so re-running the
// same file is idempotent.
type Importer struct {
	businesses BusinessWriter
	categories CategoryLookup
	logger     *zap.Logger
}

// New creates an Importer.
func New(businesses BusinessWriter, categories CategoryLookup, logger *zap.Logger) *Importer {
	return &Importer{
		businesses: businesses,
		categories: categories,
		logger:     logger,
	}
}

// Run imports every row from r. It returns an error only for problems that
// invalidate the whole file (unreadable input, wrong header, no categories);
// per-row problems are counted in the Summary.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (Summary, error) {
	var sum Summary

	cats, err := imp.categoryIndex(ctx)
	if err != nil {
		return sum, err
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return sum, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return sum, err
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed line (bad quoting, wrong field count) skips
			// that row only.
			sum.Rows++
			sum.Skipped++
			imp.logger.Warn("skipping malformed csv row", zap.Error(err))
			continue
		}

		sum.Rows++

		b, reason := imp.parseRow(record, cats)
		if reason != "" {
			sum.Skipped++
			imp.logger.Warn("skipping csv row",
				zap.Int("row", sum.Rows),
				zap.String("reason", reason))
			continue
		}

		if err := imp.businesses.Upsert(ctx, b); err != nil {
			sum.Failed++
			imp.logger.Warn("failed to upsert imported business",
				zap.String("slug", b.Slug),
				zap.Error(err))
			continue
		}

		sum.Imported++
	}

	imp.logger.Info("csv import complete",
		zap.Int("rows", sum.Rows),
		zap.Int("imported", sum.Imported),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed))

	return sum, nil
}

// categoryIndex maps both slug and folded display name to the category.
func (imp *Importer) categoryIndex(ctx context.Context) (map[string]models.Category, error) {
	cats, err := imp.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if len(cats) == 0 {
		return nil, errors.New("no categories seeded; run seed first")
	}

	index := make(map[string]models.Category, len(cats)*2)
	for _, c := range cats {
		index[c.Slug] = c
		index[strings.ToLower(c.Name)] = c
	}
	return index, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, want := range expectedHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

// parseRow builds a Business from one CSV record. The second return value is
// a human-readable skip reason, empty on success.
func (imp *Importer) parseRow(record []string, cats map[string]models.Category) (models.Business, string) {
	get := func(i int) string { return strings.TrimSpace(record[i]) }

	name := normalize.Name(get(0))
	if name == "" {
		return models.Business{}, "empty name"
	}

	slug := normalize.Slugify(name)
	if slug == "" {
		return models.Business{}, "name yields empty slug"
	}

	catKey := strings.ToLower(get(1))
	cat, ok := cats[catKey]
	if !ok {
		cat, ok = cats[normalize.Slugify(get(1))]
	}
	if !ok {
		return models.Business{}, fmt.Sprintf("unknown category %q", get(1))
	}

	b := models.Business{
		Slug:         slug,
		Name:         name,
		Address:      get(2),
		Postcode:     normalize.Postcode(get(3)),
		Phone:        get(6),
		Website:      get(7),
		ListingTier:  models.TierFree,
		CategoryID:   cat.ID,
		CategorySlug: cat.Slug,
	}

	if lat := get(4); lat != "" {
		if v, err := strconv.ParseFloat(lat, 64); err == nil {
			b.Latitude = &v
		}
	}
	if lng := get(5); lng != "" {
		if v, err := strconv.ParseFloat(lng, 64); err == nil {
			b.Longitude = &v
		}
	}

	if pr := get(8); pr != "" && models.IsValidPriceRange(pr) {
		b.PriceRange = pr
	}

	return b, ""
}
