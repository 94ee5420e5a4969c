// Package backfill repairs slugs of rows written before slugs were
// generated server-side (imports, direct SQL).
package backfill

import (
	"fmt"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	batchSize = 200
	Actor     = "backfill-slugs"
)

// Result counts repaired rows per table.
type Result map[string]int

type sluggable[T any] interface {
	*T
	model.Sluggable
	model.Entity
}

// Slugs regenerates every empty or non-canonical slug. With dryRun set it
// only counts the rows it would change.
func Slugs(db *gorm.DB, log *zap.Logger, dryRun bool) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := Result{}
	steps := []struct {
		table string
		run   func() (int, error)
	}{
		{"products", func() (int, error) { return fix[model.Product](db, log, dryRun) }},
		{"categories", func() (int, error) { return fix[model.Category](db, log, dryRun) }},
		{"brands", func() (int, error) { return fix[model.Brand](db, log, dryRun) }},
		{"suppliers", func() (int, error) { return fix[model.Supplier](db, log, dryRun) }},
		{"blog_categories", func() (int, error) { return fix[model.BlogCategory](db, log, dryRun) }},
		{"blog_authors", func() (int, error) { return fix[model.BlogAuthor](db, log, dryRun) }},
		{"blog_posts", func() (int, error) { return fix[model.BlogPost](db, log, dryRun) }},
	}
	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			return res, fmt.Errorf("%s: %w", step.table, err)
		}
		res[step.table] = n
	}
	return res, nil
}

func fix[T any, PT sluggable[T]](db *gorm.DB, log *zap.Logger, dryRun bool) (int, error) {
	var (
		rows  []T
		fixed int
	)
	err := db.FindInBatches(&rows, batchSize, func(tx *gorm.DB, _ int) error {
		for i := range rows {
			row := PT(&rows[i])
			if slug.IsValid(row.GetSlug()) {
				continue
			}

			id := row.Base().ID
			next, err := uniqueSlug[T](db, slug.FromName("", row.SlugSource()), id)
			if err != nil {
				return err
			}
			log.Info("slug repaired",
				zap.Stringer("id", id),
				zap.String("old", row.GetSlug()),
				zap.String("new", next),
				zap.Bool("dry_run", dryRun),
			)
			fixed++
			if dryRun {
				continue
			}
			if err := db.Model(new(T)).Where("id = ?", id).UpdateColumns(map[string]interface{}{
				"slug":       next,
				"updated_by": Actor,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	}).Error
	return fixed, err
}

// uniqueSlug appends -2, -3 ... until no other live row uses the slug.
func uniqueSlug[T any](db *gorm.DB, base string, id uuid.UUID) (string, error) {
	if base == "" {
		base = "item-" + id.String()[:8]
	}
	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := db.Model(new(T)).
			Where("slug = ? AND id <> ?", candidate, id).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
