package db

import (
	"context"
	"fmt"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

// SeedSampleData inserts the sample data set into any table that is still
// empty. A demo convenience mirroring the in-memory store's seeding.
func (r *Repository) SeedSampleData(ctx context.Context) error {
	count, err := r.db.ModelContext(ctx, (*Announcement)(nil)).Count()
	if err != nil {
		return fmt.Errorf("count announcements: %w", err)
	}
	if count == 0 {
		for _, in := range dashboard.SampleAnnouncements() {
			if _, err := r.CreateAnnouncement(ctx, in); err != nil {
				return fmt.Errorf("seed announcement %q: %w", in.Title, err)
			}
		}
	}

	count, err = r.db.ModelContext(ctx, (*Quiz)(nil)).Count()
	if err != nil {
		return fmt.Errorf("count quizzes: %w", err)
	}
	if count == 0 {
		for _, in := range dashboard.SampleQuizzes() {
			if _, err := r.CreateQuiz(ctx, in); err != nil {
				return fmt.Errorf("seed quiz %q: %w", in.Title, err)
			}
		}
	}

	return nil
}
