package dashboard

import (
	"context"
	"fmt"
	"time"
)

// Manager implements the dashboard operations on top of whichever Store
// was selected at startup.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) Announcements(ctx context.Context) ([]Announcement, error) {
	list, err := m.store.Announcements(ctx)
	if err != nil {
		return nil, fmt.Errorf("store list announcements: %w", err)
	}
	return list, nil
}

func (m *Manager) AnnouncementByID(ctx context.Context, id string) (*Announcement, error) {
	a, err := m.store.AnnouncementByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get announcement: %w", err)
	}
	return a, nil
}

func (m *Manager) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*Announcement, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	// Date defaults to creation time when the client omits it.
	if in.Date == nil {
		now := time.Now()
		in.Date = &now
	}

	a, err := m.store.CreateAnnouncement(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create announcement: %w", err)
	}
	return a, nil
}

func (m *Manager) UpdateAnnouncement(ctx context.Context, id string, in AnnouncementInput) (*Announcement, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	a, err := m.store.UpdateAnnouncement(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("store update announcement: %w", err)
	}
	return a, nil
}

func (m *Manager) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := m.store.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("store delete announcement: %w", err)
	}
	return nil
}

func (m *Manager) Quizzes(ctx context.Context) ([]Quiz, error) {
	list, err := m.store.Quizzes(ctx)
	if err != nil {
		return nil, fmt.Errorf("store list quizzes: %w", err)
	}
	return list, nil
}

func (m *Manager) QuizByID(ctx context.Context, id string) (*Quiz, error) {
	q, err := m.store.QuizByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get quiz: %w", err)
	}
	return q, nil
}

func (m *Manager) CreateQuiz(ctx context.Context, in QuizInput) (*Quiz, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	q, err := m.store.CreateQuiz(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create quiz: %w", err)
	}
	return q, nil
}

func (m *Manager) UpdateQuiz(ctx context.Context, id string, in QuizInput) (*Quiz, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	q, err := m.store.UpdateQuiz(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("store update quiz: %w", err)
	}
	return q, nil
}

func (m *Manager) DeleteQuiz(ctx context.Context, id string) error {
	if err := m.store.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("store delete quiz: %w", err)
	}
	return nil
}
