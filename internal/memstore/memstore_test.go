package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestAnnouncementCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	created, err := s.CreateAnnouncement(ctx, dashboard.AnnouncementInput{
		Title:   "Welcome",
		Content: "Hello",
		Author:  "Dean",
		Date:    datePtr(date),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, date, created.Date)

	got, err := s.AnnouncementByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = s.AnnouncementByID(ctx, "missing")
	require.ErrorIs(t, err, dashboard.ErrNotFound)

	updated, err := s.UpdateAnnouncement(ctx, created.ID, dashboard.AnnouncementInput{
		Title:   "Welcome Back",
		Content: "Hello",
		Author:  "Dean",
	})
	require.NoError(t, err)
	require.Equal(t, "Welcome Back", updated.Title)
	// merge semantics: omitted date keeps the stored value
	require.Equal(t, date, updated.Date)

	require.NoError(t, s.DeleteAnnouncement(ctx, created.ID))
	require.ErrorIs(t, s.DeleteAnnouncement(ctx, created.ID), dashboard.ErrNotFound)
}

func TestAnnouncementsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := s.CreateAnnouncement(ctx, dashboard.AnnouncementInput{
			Title:   title,
			Content: "c",
			Author:  "a",
		})
		require.NoError(t, err)
	}

	list, err := s.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, title := range titles {
		require.Equal(t, title, list[i].Title)
	}
}

func TestIDsStayUniqueAcrossDeleteAndInsert(t *testing.T) {
	ctx := context.Background()
	s := New()

	in := dashboard.AnnouncementInput{Title: "t", Content: "c", Author: "a"}

	first, err := s.CreateAnnouncement(ctx, in)
	require.NoError(t, err)
	second, err := s.CreateAnnouncement(ctx, in)
	require.NoError(t, err)

	require.NoError(t, s.DeleteAnnouncement(ctx, second.ID))

	third, err := s.CreateAnnouncement(ctx, in)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, third.ID)
	require.NotEqual(t, second.ID, third.ID)
}

func TestQuizCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	due := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	created, err := s.CreateQuiz(ctx, dashboard.QuizInput{
		Title:       "Quiz",
		Description: "D",
		Course:      "C",
		DueDate:     datePtr(due),
		TotalPoints: 50,
		Questions:   20,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := s.UpdateQuiz(ctx, created.ID, dashboard.QuizInput{
		Title:       "Quiz",
		Description: "D",
		Course:      "C",
		DueDate:     datePtr(due),
		TotalPoints: 60,
		Questions:   20,
	})
	require.NoError(t, err)
	require.Equal(t, 60, updated.TotalPoints)

	got, err := s.QuizByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	_, err = s.UpdateQuiz(ctx, "missing", dashboard.QuizInput{
		Title:       "x",
		Description: "x",
		Course:      "x",
		DueDate:     datePtr(due),
		TotalPoints: 1,
		Questions:   1,
	})
	require.ErrorIs(t, err, dashboard.ErrNotFound)

	require.NoError(t, s.DeleteQuiz(ctx, created.ID))
	require.ErrorIs(t, s.DeleteQuiz(ctx, created.ID), dashboard.ErrNotFound)
}

func TestNewSeeded(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	announcements, err := s.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 3)

	quizzes, err := s.Quizzes(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 3)

	for _, a := range announcements {
		require.NotEmpty(t, a.ID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	list, err := s.Announcements(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	again, err := s.Announcements(ctx)
	require.NoError(t, err)
	require.NotEqual(t, "mutated", again[0].Title)
}
