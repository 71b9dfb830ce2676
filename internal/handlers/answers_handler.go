package handlers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type AnswersHandler struct {
	interview services.InterviewService
}

func NewAnswersHandler(interview services.InterviewService) *AnswersHandler {
	return &AnswersHandler{
		interview: interview,
	}
}

// HandleSubmit handles POST /submit-answers?user_id=...
//
// The body is either a JSON array of answers or an object with user_id and
// answers; the query parameter wins when both carry a user id.
func (h *AnswersHandler) HandleSubmit(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if userID := c.Query("user_id"); userID != "" {
		req.UserID = userID
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	report, err := h.interview.SubmitAnswers(c.UserContext(), req.UserID, req.Answers)
	if errors.Is(err, services.ErrNoEvaluations) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "answers must not be empty",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(report)
}

func (h *AnswersHandler) parseRequest(c *fiber.Ctx) (models.SubmitAnswersRequest, error) {
	var req models.SubmitAnswersRequest

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return req, errors.New("empty body")
	}

	decode := c.App().Config().JSONDecoder
	if body[0] == '[' {
		err := decode(body, &req.Answers)
		return req, err
	}

	err := decode(body, &req)
	return req, err
}
