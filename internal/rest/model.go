package rest

import "time"

type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}

type Quiz struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Course      string    `json:"course"`
	DueDate     time.Time `json:"dueDate"`
	TotalPoints int       `json:"totalPoints"`
	Questions   int       `json:"questions"`
}

type AnnouncementRequest struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  string     `json:"author"`
	Date    *time.Time `json:"date"`
}

type QuizRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Course      string     `json:"course"`
	DueDate     *time.Time `json:"dueDate"`
	TotalPoints int        `json:"totalPoints"`
	Questions   int        `json:"questions"`
}

// Message is the uniform body for confirmations and errors.
type Message struct {
	Message string `json:"message"`
}
