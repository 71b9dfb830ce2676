package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/services"
)

type StartHandler struct {
	interview   services.InterviewService
	parser      services.DocumentParserService
	maxFileSize int64
}

func NewStartHandler(
	interview services.InterviewService,
	parser services.DocumentParserService,
	maxFileSize int64,
) *StartHandler {
	return &StartHandler{
		interview:   interview,
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleStart handles POST /start-interview
func (h *StartHandler) HandleStart(c *fiber.Ctx) error {
	jobRole := strings.TrimSpace(c.FormValue("job_role"))
	if jobRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_role is required",
		})
	}

	resumeText := ""

	// A missing resume part is not an error; the interview runs without one.
	if resume, err := c.FormFile("resume"); err == nil {
		if resume.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		src, err := resume.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to open uploaded resume",
			})
		}
		defer src.Close()

		resumeText, err = h.parser.ExtractText(resume.Filename, src)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read resume: %v", err),
			})
		}
	}

	resp, err := h.interview.StartInterview(c.UserContext(), jobRole, resumeText)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
