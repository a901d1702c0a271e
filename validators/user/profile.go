package userValidator

import (
	"visiocheck/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RegisterProfileRequest is the registration payload.
type RegisterProfileRequest struct {
	Name               string   `json:"name" validate:"required,min=2,max=100"`
	Email              string   `json:"email" validate:"omitempty,email"`
	Age                int      `json:"age" validate:"required,gte=5,lte=120"`
	Gender             string   `json:"gender" validate:"required,oneof=male female other"`
	Phone              string   `json:"phone" validate:"omitempty,min=8,max=20"`
	City               string   `json:"city" validate:"omitempty,max=100"`
	UsesGlasses        bool     `json:"usesGlasses"`
	LensType           string   `json:"lensType" validate:"omitempty,oneof=near distance multifocal bifocal"`
	VisualDifficulties []string `json:"visualDifficulties"`
	HealthHistory      []string `json:"healthHistory"`
}

var validate = validator.New()

var profileMessages = map[string]string{
	"Name":     "Name must be between 2 and 100 characters!",
	"Email":    "Invalid email!",
	"Age":      "Age must be between 5 and 120!",
	"Gender":   "Gender must be male, female or other!",
	"Phone":    "Invalid phone number!",
	"City":     "City name is too long!",
	"LensType": "Lens type must be near, distance, multifocal or bifocal!",
}

// RegisterProfile validator middleware
func RegisterProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			if fieldErrors, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range fieldErrors {
					if msg, known := profileMessages[fe.Field()]; known {
						errors[fe.Field()] = msg
					} else {
						errors[fe.Field()] = "Invalid value!"
					}
				}
			} else {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		// Lens type is mandatory for glasses wearers
		if reqData.UsesGlasses && reqData.LensType == "" {
			errors["LensType"] = "Lens type is required for glasses wearers!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
