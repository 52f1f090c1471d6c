package db

import (
	"time"
)

type Announcement struct {
	tableName struct{} `pg:"announcements,alias:t,discard_unknown_columns"`

	ID      int       `pg:"announcementId,pk"`
	Title   string    `pg:"title,use_zero"`
	Content string    `pg:"content,use_zero"`
	Author  string    `pg:"author,use_zero"`
	Date    time.Time `pg:"date,use_zero"`
}

type Quiz struct {
	tableName struct{} `pg:"quizzes,alias:t,discard_unknown_columns"`

	ID          int       `pg:"quizId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Course      string    `pg:"course,use_zero"`
	DueDate     time.Time `pg:"dueDate,use_zero"`
	TotalPoints int       `pg:"totalPoints,use_zero"`
	Questions   int       `pg:"questions,use_zero"`
}
