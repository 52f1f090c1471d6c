package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

const quizNotFound = "Quiz not found"

type QuizHandler struct {
	m   *dashboard.Manager
	log *slog.Logger
}

func NewQuizHandler(m *dashboard.Manager, log *slog.Logger) *QuizHandler {
	return &QuizHandler{
		m:   m,
		log: log,
	}
}

func (h *QuizHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.ByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /api/quizzes
// @Summary List quizzes
// @Description Returns all quizzes sorted soonest-first by due date
// @Tags quizzes
// @Produce json
// @Success 200 {array} rest.Quiz
// @Failure 500 {object} rest.Message
// @Router /api/quizzes [get]
func (h *QuizHandler) List(c echo.Context) error {
	list, err := h.m.Quizzes(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err, quizNotFound)
	}

	return c.JSON(http.StatusOK, Map(list, NewQuiz))
}

// ByID handles GET /api/quizzes/:id
// @Summary Get quiz by ID
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} rest.Quiz
// @Failure 400,404,500 {object} rest.Message
// @Router /api/quizzes/{id} [get]
func (h *QuizHandler) ByID(c echo.Context) error {
	q, err := h.m.QuizByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err, quizNotFound)
	}

	return c.JSON(http.StatusOK, NewQuiz(*q))
}

// Create handles POST /api/quizzes
// @Summary Create quiz
// @Description All six fields are required; totalPoints and questions must be at least 1
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body rest.QuizRequest true "Quiz fields"
// @Success 201 {object} rest.Quiz
// @Failure 400,500 {object} rest.Message
// @Router /api/quizzes [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Message{Message: "invalid request body"})
	}

	q, err := h.m.CreateQuiz(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, h.log, err, quizNotFound)
	}

	return c.JSON(http.StatusCreated, NewQuiz(*q))
}

// Update handles PUT /api/quizzes/:id
// @Summary Update quiz
// @Description Re-validates all fields and returns the full updated record
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body rest.QuizRequest true "Quiz fields"
// @Success 200 {object} rest.Quiz
// @Failure 400,404,500 {object} rest.Message
// @Router /api/quizzes/{id} [put]
func (h *QuizHandler) Update(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Message{Message: "invalid request body"})
	}

	q, err := h.m.UpdateQuiz(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, h.log, err, quizNotFound)
	}

	return c.JSON(http.StatusOK, NewQuiz(*q))
}

// Delete handles DELETE /api/quizzes/:id
// @Summary Delete quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} rest.Message
// @Failure 400,404,500 {object} rest.Message
// @Router /api/quizzes/{id} [delete]
func (h *QuizHandler) Delete(c echo.Context) error {
	if err := h.m.DeleteQuiz(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err, quizNotFound)
	}

	return c.JSON(http.StatusOK, Message{Message: "Quiz deleted successfully"})
}
