package dashboard

import "time"

// Announcement is a campus-wide notice shown on the dashboard.
// IDs are opaque strings assigned by the active store on creation.
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

// AnnouncementInput carries the writable announcement fields. The validate
// tags are the canonical field-requirement table, shared by the server
// handlers and the client package.
type AnnouncementInput struct {
	Title   string     `json:"title" validate:"required"`
	Content string     `json:"content" validate:"required"`
	Author  string     `json:"author" validate:"required"`
	Date    *time.Time `json:"date"`
}

type QuizInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Course      string     `json:"course" validate:"required"`
	DueDate     *time.Time `json:"dueDate" validate:"required"`
	TotalPoints int        `json:"totalPoints" validate:"required,gte=1"`
	Questions   int        `json:"questions" validate:"required,gte=1"`
}
