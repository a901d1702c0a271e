package userController

import (
	"encoding/json"
	"log"

	"visiocheck/database"
	"visiocheck/middleware"
	"visiocheck/models"
	"visiocheck/screening"
	userValidator "visiocheck/validators/user"

	"github.com/gofiber/fiber/v2"
)

// RegisterProfile creates the immutable user profile for a new screening
// session and hands back the session token the rest of the flow uses.
func RegisterProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfile").(*userValidator.RegisterProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	difficulties, err := json.Marshal(reqData.VisualDifficulties)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid visual difficulties!", nil)
	}
	history, err := json.Marshal(reqData.HealthHistory)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid health history!", nil)
	}

	profile := models.UserProfile{
		Name:               reqData.Name,
		Email:              reqData.Email,
		Age:                reqData.Age,
		Gender:             reqData.Gender,
		Phone:              reqData.Phone,
		City:               reqData.City,
		UsesGlasses:        reqData.UsesGlasses,
		LensType:           reqData.LensType,
		VisualDifficulties: difficulties,
		HealthHistory:      history,
	}

	if err := database.Database.Db.Create(&profile).Error; err != nil {
		log.Printf("Error saving profile to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register profile!", nil)
	}

	token, err := middleware.GenerateSessionToken(profile.ID, profile.Name)
	if err != nil {
		log.Printf("Error generating session token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Profile registered successfully.", fiber.Map{
		"profile": profile,
		"token":   token,
	})
}

// GetProfile returns the caller's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", profile)
}

// ScreeningProfile converts a stored profile row into the snapshot the
// screening engine works with.
func ScreeningProfile(p models.UserProfile) screening.Profile {
	var difficulties []string
	if len(p.VisualDifficulties) > 0 {
		if err := json.Unmarshal(p.VisualDifficulties, &difficulties); err != nil {
			log.Printf("Error decoding visual difficulties for profile %d: %v", p.ID, err)
		}
	}
	var history []string
	if len(p.HealthHistory) > 0 {
		if err := json.Unmarshal(p.HealthHistory, &history); err != nil {
			log.Printf("Error decoding health history for profile %d: %v", p.ID, err)
		}
	}

	return screening.Profile{
		UserID:             p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Age:                p.Age,
		Gender:             p.Gender,
		UsesGlasses:        p.UsesGlasses,
		LensType:           p.LensType,
		VisualDifficulties: difficulties,
		HealthHistory:      history,
	}
}
