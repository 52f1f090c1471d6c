// Package memstore is the in-memory fallback backend, used when the
// database is unreachable at startup. Data lives for the process lifetime
// and is lost on restart.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

type Store struct {
	mu            sync.RWMutex
	announcements []dashboard.Announcement
	quizzes       []dashboard.Quiz
}

var _ dashboard.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the sample data set.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()
	for _, in := range dashboard.SampleAnnouncements() {
		_, _ = s.CreateAnnouncement(ctx, in)
	}
	for _, in := range dashboard.SampleQuizzes() {
		_, _ = s.CreateQuiz(ctx, in)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Announcements(ctx context.Context) ([]dashboard.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]dashboard.Announcement, len(s.announcements))
	copy(list, s.announcements)
	return list, nil
}

func (s *Store) AnnouncementByID(ctx context.Context, id string) (*dashboard.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			a := s.announcements[i]
			return &a, nil
		}
	}
	return nil, dashboard.ErrNotFound
}

func (s *Store) CreateAnnouncement(ctx context.Context, in dashboard.AnnouncementInput) (*dashboard.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := dashboard.Announcement{
		ID:      uuid.NewString(),
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	s.announcements = append(s.announcements, a)
	return &a, nil
}

func (s *Store) UpdateAnnouncement(ctx context.Context, id string, in dashboard.AnnouncementInput) (*dashboard.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID != id {
			continue
		}
		a := &s.announcements[i]
		a.Title = in.Title
		a.Content = in.Content
		a.Author = in.Author
		// Merge semantics: an omitted date keeps the stored one.
		if in.Date != nil {
			a.Date = *in.Date
		}
		out := *a
		return &out, nil
	}
	return nil, dashboard.ErrNotFound
}

func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return nil
		}
	}
	return dashboard.ErrNotFound
}

func (s *Store) Quizzes(ctx context.Context) ([]dashboard.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]dashboard.Quiz, len(s.quizzes))
	copy(list, s.quizzes)
	return list, nil
}

func (s *Store) QuizByID(ctx context.Context, id string) (*dashboard.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			q := s.quizzes[i]
			return &q, nil
		}
	}
	return nil, dashboard.ErrNotFound
}

func (s *Store) CreateQuiz(ctx context.Context, in dashboard.QuizInput) (*dashboard.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := dashboard.Quiz{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Course:      in.Course,
		TotalPoints: in.TotalPoints,
		Questions:   in.Questions,
	}
	if in.DueDate != nil {
		q.DueDate = *in.DueDate
	}
	s.quizzes = append(s.quizzes, q)
	return &q, nil
}

func (s *Store) UpdateQuiz(ctx context.Context, id string, in dashboard.QuizInput) (*dashboard.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].ID != id {
			continue
		}
		q := &s.quizzes[i]
		q.Title = in.Title
		q.Description = in.Description
		q.Course = in.Course
		if in.DueDate != nil {
			q.DueDate = *in.DueDate
		}
		q.TotalPoints = in.TotalPoints
		q.Questions = in.Questions
		out := *q
		return &out, nil
	}
	return nil, dashboard.ErrNotFound
}

func (s *Store) DeleteQuiz(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			return nil
		}
	}
	return dashboard.ErrNotFound
}
