package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mo-adel007/quizz/internal/dashboard"
	"github.com/mo-adel007/quizz/internal/memstore"
)

func newTestServer(store dashboard.Store) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := dashboard.NewManager(store)
	return RegisterRoutes(
		NewAnnouncementHandler(manager, logger),
		NewQuizHandler(manager, logger),
		logger,
	)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListAnnouncements(t *testing.T) {
	t.Run("EmptyStoreIsEmptyArray", func(t *testing.T) {
		e := newTestServer(memstore.New())
		rec := doJSON(t, e, http.MethodGet, "/api/announcements", "")

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("SeededStore", func(t *testing.T) {
		e := newTestServer(memstore.NewSeeded())
		rec := doJSON(t, e, http.MethodGet, "/api/announcements", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var list []Announcement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 3)
		for _, a := range list {
			require.NotEmpty(t, a.ID)
			require.NotEmpty(t, a.Title)
		}
	})
}

func TestCreateAnnouncement(t *testing.T) {
	t.Run("WithoutDateDefaultsToNow", func(t *testing.T) {
		e := newTestServer(memstore.New())
		before := time.Now()

		rec := doJSON(t, e, http.MethodPost, "/api/announcements",
			`{"title":"T","content":"C","author":"A"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var a Announcement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
		require.NotEmpty(t, a.ID)
		require.Equal(t, "T", a.Title)
		require.False(t, a.Date.Before(before))
		require.False(t, a.Date.After(time.Now().Add(time.Second)))
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		e := newTestServer(memstore.New())

		rec := doJSON(t, e, http.MethodPost, "/api/announcements",
			`{"title":"T"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var msg Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		require.Contains(t, msg.Message, "content is required")
		require.Contains(t, msg.Message, "author is required")
	})

	t.Run("MalformedBodyRejected", func(t *testing.T) {
		e := newTestServer(memstore.New())

		rec := doJSON(t, e, http.MethodPost, "/api/announcements", `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAnnouncementByID(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSeeded()
	e := newTestServer(store)

	seeded, err := store.Announcements(ctx)
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodGet, "/api/announcements/"+seeded[0].ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var a Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	require.Equal(t, seeded[0].ID, a.ID)
	require.Equal(t, seeded[0].Title, a.Title)

	rec = doJSON(t, e, http.MethodGet, "/api/announcements/no-such-id", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var msg Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	require.Equal(t, "Announcement not found", msg.Message)
}

func TestUpdateAnnouncement(t *testing.T) {
	t.Run("NonexistentIDIs404", func(t *testing.T) {
		e := newTestServer(memstore.New())

		rec := doJSON(t, e, http.MethodPut, "/api/announcements/no-such-id",
			`{"title":"T","content":"C","author":"A"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ReturnsFullMergedRecord", func(t *testing.T) {
		store := memstore.New()
		e := newTestServer(store)

		rec := doJSON(t, e, http.MethodPost, "/api/announcements",
			`{"title":"T","content":"C","author":"A","date":"2025-01-15T00:00:00Z"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var created Announcement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, e, http.MethodPut, "/api/announcements/"+created.ID,
			`{"title":"T2","content":"C","author":"A"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated Announcement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "T2", updated.Title)
		require.Equal(t, created.Content, updated.Content)
		require.Equal(t, created.Author, updated.Author)
		// omitted date keeps the stored value
		require.True(t, created.Date.Equal(updated.Date))
	})

	t.Run("InvalidFieldsRejected", func(t *testing.T) {
		store := memstore.NewSeeded()
		e := newTestServer(store)

		seeded, err := store.Announcements(context.Background())
		require.NoError(t, err)

		rec := doJSON(t, e, http.MethodPut, "/api/announcements/"+seeded[0].ID,
			`{"title":"","content":"C","author":"A"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteAnnouncement(t *testing.T) {
	store := memstore.NewSeeded()
	e := newTestServer(store)

	seeded, err := store.Announcements(context.Background())
	require.NoError(t, err)
	id := seeded[0].ID

	rec := doJSON(t, e, http.MethodDelete, "/api/announcements/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var msg Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	require.Equal(t, "Announcement deleted successfully", msg.Message)

	// second delete on the same id is not-found, never a second success
	rec = doJSON(t, e, http.MethodDelete, "/api/announcements/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateQuizBoundaries(t *testing.T) {
	e := newTestServer(memstore.New())

	body := func(points, questions int) string {
		return `{"title":"Q","description":"D","course":"C","dueDate":"2025-03-10T00:00:00Z",` +
			`"totalPoints":` + strconv.Itoa(points) + `,"questions":` + strconv.Itoa(questions) + `}`
	}

	rec := doJSON(t, e, http.MethodPost, "/api/quizzes", body(0, 20))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/quizzes", body(50, 0))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/quizzes", body(1, 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	var q Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	require.NotEmpty(t, q.ID)
	require.Equal(t, 1, q.TotalPoints)
	require.Equal(t, 1, q.Questions)
}

func TestQuizLifecycle(t *testing.T) {
	e := newTestServer(memstore.New())

	rec := doJSON(t, e, http.MethodPost, "/api/quizzes",
		`{"title":"Q","description":"D","course":"C","dueDate":"2025-03-10T00:00:00Z","totalPoints":50,"questions":20}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, e, http.MethodGet, "/api/quizzes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/quizzes/"+created.ID,
		`{"title":"Q","description":"D","course":"C","dueDate":"2025-03-12T00:00:00Z","totalPoints":60,"questions":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, 60, updated.TotalPoints)

	rec = doJSON(t, e, http.MethodDelete, "/api/quizzes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var msg Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	require.Equal(t, "Quiz deleted successfully", msg.Message)

	rec = doJSON(t, e, http.MethodGet, "/api/quizzes/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHome(t *testing.T) {
	e := newTestServer(memstore.New())
	rec := doJSON(t, e, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Student Dashboard API is running", rec.Body.String())
}
