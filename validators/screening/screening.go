package screeningValidator

import (
	"strings"

	"visiocheck/middleware"
	"visiocheck/screening"

	"github.com/gofiber/fiber/v2"
)

// SubmitAnswerRequest is the answer submission payload.
type SubmitAnswerRequest struct {
	Module        string `json:"module"`
	QuestionIndex *int   `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// SubmitAnswer validator middleware
func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAnswerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !screening.IsValidModule(screening.ModuleType(reqData.Module)) {
			errors["module"] = "Unknown screening module!"
		}

		if reqData.QuestionIndex == nil || *reqData.QuestionIndex < 0 {
			errors["questionIndex"] = "Question index must be a non-negative integer!"
		}

		if strings.TrimSpace(reqData.Answer) == "" {
			errors["answer"] = "Answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
