package db

import (
	"strconv"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

func (a *Announcement) toDomain() dashboard.Announcement {
	return dashboard.Announcement{
		ID:      strconv.Itoa(a.ID),
		Title:   a.Title,
		Content: a.Content,
		Author:  a.Author,
		Date:    a.Date,
	}
}

func (q *Quiz) toDomain() dashboard.Quiz {
	return dashboard.Quiz{
		ID:          strconv.Itoa(q.ID),
		Title:       q.Title,
		Description: q.Description,
		Course:      q.Course,
		DueDate:     q.DueDate,
		TotalPoints: q.TotalPoints,
		Questions:   q.Questions,
	}
}

// parseID maps a syntactically invalid id to ErrInvalidID so handlers can
// answer 400 instead of 404.
func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 {
		return 0, dashboard.ErrInvalidID
	}
	return n, nil
}
