package screeningController

import (
	"errors"
	"time"

	paymentController "visiocheck/controllers/payment"
	userController "visiocheck/controllers/user"
	"visiocheck/database"
	"visiocheck/middleware"
	"visiocheck/models"
	"visiocheck/screening"
	screeningValidator "visiocheck/validators/screening"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// StartSession begins a screening run for a registered, paid-up user. Any
// previous live session for the user is discarded.
func StartSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Profile not found!", nil)
	}

	if !paymentController.HasCompletedPayment(userID) {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Screening requires a completed payment!", nil)
	}

	session := screening.Live.Start(userController.ScreeningProfile(profile), NewNotifier())

	question, idx, total, err := session.CurrentQuestion()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}
	module, _ := session.CurrentModule()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session started!", fiber.Map{
		"sessionId":     session.ID,
		"level":         session.Level,
		"moduleOrder":   screening.DefaultModuleOrder(),
		"module":        module,
		"moduleName":    screening.ModuleName(module),
		"question":      question,
		"questionIndex": idx,
		"questionCount": total,
	})
}

// GetCurrentQuestion returns the next unanswered question of the active module.
func GetCurrentQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := screening.Live.Get(userID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active session!", nil)
	}

	question, idx, total, err := session.CurrentQuestion()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session already complete!", nil)
	}

	module, _ := session.CurrentModule()
	moduleIdx, moduleCount := session.Progress()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched!", fiber.Map{
		"module":        module,
		"moduleName":    screening.ModuleName(module),
		"moduleIndex":   moduleIdx,
		"moduleCount":   moduleCount,
		"question":      question,
		"questionIndex": idx,
		"questionCount": total,
	})
}

// SubmitAnswer records one answer and advances the session state machine.
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := screening.Live.Get(userID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active session!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*screeningValidator.SubmitAnswerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	outcome, err := session.SubmitAnswer(
		screening.ModuleType(reqData.Module),
		*reqData.QuestionIndex,
		reqData.Answer,
		time.Now(),
	)
	if err != nil {
		switch {
		case errors.Is(err, screening.ErrSessionComplete):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session already complete!", nil)
		case errors.Is(err, screening.ErrWrongModule):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Answer does not target the active module!", nil)
		case errors.Is(err, screening.ErrOutOfOrder):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Answer submitted out of order!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record answer!", nil)
	}

	data := fiber.Map{
		"correct":         outcome.Response.Correct,
		"sessionComplete": outcome.SessionResult != nil,
		"moduleComplete":  outcome.ModuleResult != nil,
	}

	if outcome.ModuleResult != nil {
		data["moduleResult"] = outcome.ModuleResult
	}

	if outcome.SessionResult != nil {
		data["sessionResult"] = outcome.SessionResult
		data["recommendations"] = screening.Recommendations(*outcome.SessionResult, session.Profile)
	} else if module, ok := session.CurrentModule(); ok {
		question, idx, total, qErr := session.CurrentQuestion()
		if qErr == nil {
			data["nextModule"] = module
			data["nextQuestion"] = question
			data["questionIndex"] = idx
			data["questionCount"] = total
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", data)
}

// GetResults returns the final session result and recommendations.
func GetResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := screening.Live.Get(userID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active session!", nil)
	}

	result, done := session.Result()
	if !done {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not yet complete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched!", fiber.Map{
		"result":          result,
		"recommendations": screening.Recommendations(result, session.Profile),
	})
}

// RestartSession discards all in-memory session state. The user re-enters the
// flow through a fresh registration.
func RestartSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	screening.Live.Remove(userID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session discarded. Register a new profile to start again.", nil)
}

// GetHistory lists the user's persisted session results.
func GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var records []models.SessionResultRecord
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).
		Order("completed_at DESC").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History fetched!", records)
}

// GetTodayStats counts sessions completed since the beginning of today.
func GetTodayStats(c *fiber.Ctx) error {
	var count int64
	if err := database.Database.Db.Model(&models.SessionResultRecord{}).
		Where("completed_at >= ? AND is_deleted = false", now.BeginningOfDay()).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched!", fiber.Map{
		"completedToday": count,
	})
}
