package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

// Repository is the persistent backend over PostgreSQL.
type Repository struct {
	db pg.DBI
}

var _ dashboard.Store = (*Repository)(nil)

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Announcements returns all announcements, newest first.
func (r *Repository) Announcements(ctx context.Context) ([]dashboard.Announcement, error) {
	var rows []Announcement
	err := r.db.ModelContext(ctx, &rows).
		OrderExpr(`"t"."date" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}

	list := make([]dashboard.Announcement, len(rows))
	for i := range rows {
		list[i] = rows[i].toDomain()
	}
	return list, nil
}

func (r *Repository) AnnouncementByID(ctx context.Context, id string) (*dashboard.Announcement, error) {
	row, err := r.announcementRow(ctx, id)
	if err != nil {
		return nil, err
	}

	a := row.toDomain()
	return &a, nil
}

func (r *Repository) CreateAnnouncement(ctx context.Context, in dashboard.AnnouncementInput) (*dashboard.Announcement, error) {
	row := &Announcement{
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
	}
	if in.Date != nil {
		row.Date = *in.Date
	}

	if _, err := r.db.ModelContext(ctx, row).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert announcement: %w", err)
	}

	a := row.toDomain()
	return &a, nil
}

func (r *Repository) UpdateAnnouncement(ctx context.Context, id string, in dashboard.AnnouncementInput) (*dashboard.Announcement, error) {
	// Read-merge-write so the response carries the full merged record and
	// an omitted date keeps the stored value.
	row, err := r.announcementRow(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Title = in.Title
	row.Content = in.Content
	row.Author = in.Author
	if in.Date != nil {
		row.Date = *in.Date
	}

	if _, err := r.db.ModelContext(ctx, row).WherePK().Update(); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	a := row.toDomain()
	return &a, nil
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id string) error {
	pk, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ModelContext(ctx, (*Announcement)(nil)).
		Where(`"t"."announcementId" = ?`, pk).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if res.RowsAffected() == 0 {
		return dashboard.ErrNotFound
	}
	return nil
}

func (r *Repository) announcementRow(ctx context.Context, id string) (*Announcement, error) {
	pk, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := &Announcement{}
	err = r.db.ModelContext(ctx, row).
		Where(`"t"."announcementId" = ?`, pk).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, dashboard.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get announcement by id: %w", err)
	}

	return row, nil
}

// Quizzes returns all quizzes, soonest due date first.
func (r *Repository) Quizzes(ctx context.Context) ([]dashboard.Quiz, error) {
	var rows []Quiz
	err := r.db.ModelContext(ctx, &rows).
		OrderExpr(`"t"."dueDate" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}

	list := make([]dashboard.Quiz, len(rows))
	for i := range rows {
		list[i] = rows[i].toDomain()
	}
	return list, nil
}

func (r *Repository) QuizByID(ctx context.Context, id string) (*dashboard.Quiz, error) {
	row, err := r.quizRow(ctx, id)
	if err != nil {
		return nil, err
	}

	q := row.toDomain()
	return &q, nil
}

func (r *Repository) CreateQuiz(ctx context.Context, in dashboard.QuizInput) (*dashboard.Quiz, error) {
	row := &Quiz{
		Title:       in.Title,
		Description: in.Description,
		Course:      in.Course,
		TotalPoints: in.TotalPoints,
		Questions:   in.Questions,
	}
	if in.DueDate != nil {
		row.DueDate = *in.DueDate
	}

	if _, err := r.db.ModelContext(ctx, row).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert quiz: %w", err)
	}

	q := row.toDomain()
	return &q, nil
}

func (r *Repository) UpdateQuiz(ctx context.Context, id string, in dashboard.QuizInput) (*dashboard.Quiz, error) {
	row, err := r.quizRow(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Title = in.Title
	row.Description = in.Description
	row.Course = in.Course
	if in.DueDate != nil {
		row.DueDate = *in.DueDate
	}
	row.TotalPoints = in.TotalPoints
	row.Questions = in.Questions

	if _, err := r.db.ModelContext(ctx, row).WherePK().Update(); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	q := row.toDomain()
	return &q, nil
}

func (r *Repository) DeleteQuiz(ctx context.Context, id string) error {
	pk, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ModelContext(ctx, (*Quiz)(nil)).
		Where(`"t"."quizId" = ?`, pk).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	if res.RowsAffected() == 0 {
		return dashboard.ErrNotFound
	}
	return nil
}

func (r *Repository) quizRow(ctx context.Context, id string) (*Quiz, error) {
	pk, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := &Quiz{}
	err = r.db.ModelContext(ctx, row).
		Where(`"t"."quizId" = ?`, pk).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, dashboard.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}

	return row, nil
}
