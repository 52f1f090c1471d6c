package dashboard

import "context"

// AnnouncementStore is the capability surface a backend must provide for
// announcements. Two implementations exist: internal/memstore (in-memory)
// and internal/db (Postgres). One of them is selected at startup and
// injected; handlers never know which.
type AnnouncementStore interface {
	Announcements(ctx context.Context) ([]Announcement, error)
	AnnouncementByID(ctx context.Context, id string) (*Announcement, error)
	CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, in AnnouncementInput) (*Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type QuizStore interface {
	Quizzes(ctx context.Context) ([]Quiz, error)
	QuizByID(ctx context.Context, id string) (*Quiz, error)
	CreateQuiz(ctx context.Context, in QuizInput) (*Quiz, error)
	UpdateQuiz(ctx context.Context, id string, in QuizInput) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
}

// Store is the full backend contract for the process lifetime.
type Store interface {
	AnnouncementStore
	QuizStore

	Ping(ctx context.Context) error
	Close() error
}
