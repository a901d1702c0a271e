package paymentValidator

import (
	"regexp"
	"strings"

	"visiocheck/middleware"
	"visiocheck/models"

	"github.com/gofiber/fiber/v2"
)

var cardNumberRe = regexp.MustCompile(`^\d{13,19}$`)

// CreatePayment validator middleware
func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount     float64 `json:"amount"`
			Method     string  `json:"method"`
			CardNumber string  `json:"cardNumber"`
			CardHolder string  `json:"cardHolder"`
			CardExpiry string  `json:"cardExpiry"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than zero!"
		}

		if reqData.Method != models.PaymentMethodPix && reqData.Method != models.PaymentMethodCreditCard {
			errors["method"] = "Payment method must be pix or credit_card!"
		}

		if reqData.Method == models.PaymentMethodCreditCard {
			digits := strings.ReplaceAll(reqData.CardNumber, " ", "")
			if !cardNumberRe.MatchString(digits) {
				errors["cardNumber"] = "Invalid card number!"
			}
			if len(strings.TrimSpace(reqData.CardHolder)) < 2 {
				errors["cardHolder"] = "Card holder name is required!"
			}
			if reqData.CardExpiry == "" {
				errors["cardExpiry"] = "Card expiry is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// ProcessPayment validator middleware
func ProcessPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TransactionID string `json:"transactionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.TransactionID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"transactionId": "Transaction id is required!",
			})
		}

		c.Locals("validatedProcess", reqData)
		return c.Next()
	}
}
