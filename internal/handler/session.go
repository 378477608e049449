package handler

import (
	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/logger"
	"compass-quiz/internal/service"
	"compass-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	sessions  service.QuizSessionService
	tokens    service.TokenService
	bank      domain.QuestionBank
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.QuizSessionService, tokens service.TokenService, bank domain.QuestionBank) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		tokens:    tokens,
		bank:      bank,
		validator: validation.NewValidator(),
	}
}

// Register mounts the session routes. protect guards every /sessions/:id route.
func (h *SessionHandler) Register(router fiber.Router, protect ...fiber.Handler) {
	guarded := func(next fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, protect...), next)
	}
	group := router.Group("/sessions")
	group.Post("/", h.StartSession)
	group.Get("/:id", guarded(h.GetSession)...)
	group.Post("/:id/answers", guarded(h.SubmitAnswers)...)
	group.Post("/:id/advance", guarded(h.Advance)...)
	group.Post("/:id/reset", guarded(h.Reset)...)
	group.Get("/:id/result", guarded(h.GetResult)...)
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Creates a short or full quiz session and returns its first question set with an ownership token
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Quiz type"
// @Success 201 {object} dto.StartSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateStartSession(&req); len(errs) > 0 {
		return errs
	}

	session, err := h.sessions.Start(c.Context(), domain.QuizType(req.Type))
	if err != nil {
		return err
	}
	token, err := h.tokens.Issue(session.SessionID)
	if err != nil {
		logger.Get().Error("Failed to issue session token", zap.Error(err), zap.String("sessionID", session.SessionID))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.StartSessionResponse{
		Session: dto.NewSessionResponse(session, h.bank),
		Token:   token,
	})
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Returns the session phase, issued questions with text, answers and scores
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session, h.bank))
}

// SubmitAnswers godoc
// @Summary Submit answers
// @Description Merges slider values in [0, 1] for questions issued in this session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswersRequest true "Answers by question id"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswers(&req); len(errs) > 0 {
		return errs
	}

	answers, err := req.ToAnswers()
	if err != nil {
		return err
	}

	session, err := h.sessions.SubmitAnswers(c.Context(), c.Params("id"), answers)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session, h.bank))
}

// Advance godoc
// @Summary Advance a session
// @Description Closes the current phase: issues tiebreakers, fixes the macro-cell and issues its follow-up questions, or completes the session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	session, err := h.sessions.Advance(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session, h.bank))
}

// Reset godoc
// @Summary Reset a session
// @Description Clears all answers and scores and reissues the initial question set
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	session, err := h.sessions.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session, h.bank))
}

// GetResult godoc
// @Summary Get the session result
// @Description Returns the final classification once the session is complete
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions/{id}/result [get]
func (h *SessionHandler) GetResult(c *fiber.Ctx) error {
	result, err := h.sessions.Result(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResultResponse(result))
}
