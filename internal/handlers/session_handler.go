package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/repositories"
	"alfredoptarigan/interview-coach/internal/services"
)

type SessionHandler struct {
	interview services.InterviewService
}

func NewSessionHandler(interview services.InterviewService) *SessionHandler {
	return &SessionHandler{
		interview: interview,
	}
}

// HandleNextRound handles GET /next-round?user_id=...
// An unknown user is reported in the payload with status 200.
func (h *SessionHandler) HandleNextRound(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	result, err := h.interview.NextRound(c.UserContext(), userID)
	if err != nil {
		return err
	}

	switch {
	case result.Error != "":
		return c.JSON(fiber.Map{"error": result.Error})
	case result.Message != "":
		return c.JSON(fiber.Map{"message": result.Message})
	}

	questions := result.Questions
	if questions == nil {
		questions = []models.Question{}
	}

	return c.JSON(fiber.Map{"questions": questions})
}

// HandleGetSession handles GET /session/:user_id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.interview.GetSession(c.UserContext(), c.Params("user_id"))
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(session)
}
