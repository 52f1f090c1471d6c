package rest

import "github.com/mo-adel007/quizz/internal/dashboard"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewAnnouncement(a dashboard.Announcement) Announcement {
	return Announcement{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Author:  a.Author,
		Date:    a.Date,
	}
}

func NewQuiz(q dashboard.Quiz) Quiz {
	return Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Course:      q.Course,
		DueDate:     q.DueDate,
		TotalPoints: q.TotalPoints,
		Questions:   q.Questions,
	}
}

func (r AnnouncementRequest) toInput() dashboard.AnnouncementInput {
	return dashboard.AnnouncementInput{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
		Date:    r.Date,
	}
}

func (r QuizRequest) toInput() dashboard.QuizInput {
	return dashboard.QuizInput{
		Title:       r.Title,
		Description: r.Description,
		Course:      r.Course,
		DueDate:     r.DueDate,
		TotalPoints: r.TotalPoints,
		Questions:   r.Questions,
	}
}
