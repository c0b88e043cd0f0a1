package services

import (
	"context"
	"fmt"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// CategoryService renames and merges category labels.
type CategoryService struct {
	storage *storage.SQLiteRepository
	events  eventSink
	logger  *applog.Logger
}

func NewCategoryService(storage *storage.SQLiteRepository, publisher EventPublisher) *CategoryService {
	logger := applog.Default(applog.ComponentCategory)
	return &CategoryService{
		storage: storage,
		events:  eventSink{publisher: publisher, logger: logger},
		logger:  logger,
	}
}

// NormalizeCategoryName capitalizes the first letter of each word.
func NormalizeCategoryName(name string) string {
	return core.NormalizeCategory(name)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]string, error) {
	return s.storage.ListDistinctCategories(ctx)
}

// MergeCategories moves every transaction of the old categories to the
// normalized new name. Matching is exact against stored names. Merging a
// category into itself rewrites it in place.
func (s *CategoryService) MergeCategories(ctx context.Context, oldCategories []string, newCategory string) (int64, error) {
	from := core.UniqueCategories(oldCategories)
	if len(from) == 0 {
		return 0, core.ErrNoCategories
	}
	to := NormalizeCategoryName(newCategory)
	if to == "" {
		return 0, core.ErrEmptyCategory
	}

	n, err := s.storage.RenameCategories(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("merge categories into %s: %w", to, err)
	}

	s.logger.InfoContext(ctx, "Categories merged",
		applog.FieldOperation, amqp.OpMerge,
		applog.FieldCategory, to,
		applog.FieldRows, n)
	s.events.publish(ctx, amqp.OpMerge, 0, n)
	return n, nil
}
