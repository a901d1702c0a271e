package paymentController

import (
	"fmt"
	"strings"
	"time"

	"visiocheck/config"
	"visiocheck/database"
	"visiocheck/middleware"
	"visiocheck/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePayment opens a pending transaction for the screening fee. Pix
// payments get a simulated copy-paste code; card payments keep the last four
// digits for the simulated gateway decision.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Profile not found!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		Amount     float64 `json:"amount"`
		Method     string  `json:"method"`
		CardNumber string  `json:"cardNumber"`
		CardHolder string  `json:"cardHolder"`
		CardExpiry string  `json:"cardExpiry"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Amount != config.AppConfig.ScreeningPrice {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("The screening fee is %.2f!", config.AppConfig.ScreeningPrice), nil)
	}

	transaction := models.PaymentTransaction{
		UserID:        userID,
		Amount:        reqData.Amount,
		Method:        reqData.Method,
		Status:        models.PaymentStatusPending,
		TransactionID: uuid.NewString(),
	}

	if reqData.Method == models.PaymentMethodPix {
		transaction.PixCode = "00020126-visiocheck-" + uuid.NewString()
	} else {
		digits := strings.ReplaceAll(reqData.CardNumber, " ", "")
		transaction.CardLast4 = digits[len(digits)-4:]
	}

	if err := database.Database.Db.Create(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created!", fiber.Map{
		"transactionId": transaction.TransactionID,
		"method":        transaction.Method,
		"amount":        transaction.Amount,
		"pixCode":       transaction.PixCode,
		"status":        transaction.Status,
	})
}

// ProcessPayment runs the simulated gateway on a pending or previously failed
// transaction. Failure is user-visible and retryable; everything else in the
// flow stays best-effort.
func ProcessPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProcess").(*struct {
		TransactionID string `json:"transactionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var transaction models.PaymentTransaction
	if err := db.Where("transaction_id = ? AND user_id = ? AND is_deleted = false",
		reqData.TransactionID, userID).First(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
	}

	switch transaction.Status {
	case models.PaymentStatusCompleted:
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	case models.PaymentStatusCancelled:
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction was cancelled!", nil)
	}

	if declined, reason := simulateGateway(transaction); declined {
		transaction.Status = models.PaymentStatusFailed
		transaction.FailureReason = reason
		db.Save(&transaction)

		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment failed!", fiber.Map{
			"transactionId": transaction.TransactionID,
			"status":        transaction.Status,
			"reason":        reason,
			"retryable":     true,
		})
	}

	completedAt := time.Now()
	transaction.Status = models.PaymentStatusCompleted
	transaction.FailureReason = ""
	transaction.CompletedAt = &completedAt
	if err := db.Save(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment completed!", fiber.Map{
		"transactionId": transaction.TransactionID,
		"status":        transaction.Status,
		"completedAt":   transaction.CompletedAt,
	})
}

// CancelPayment lets the user abandon a pending or failed transaction.
func CancelPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProcess").(*struct {
		TransactionID string `json:"transactionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var transaction models.PaymentTransaction
	if err := db.Where("transaction_id = ? AND user_id = ? AND is_deleted = false",
		reqData.TransactionID, userID).First(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
	}

	if transaction.Status == models.PaymentStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Completed transactions cannot be cancelled!", nil)
	}

	transaction.Status = models.PaymentStatusCancelled
	if err := db.Save(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment cancelled!", fiber.Map{
		"transactionId": transaction.TransactionID,
		"status":        transaction.Status,
	})
}

// GetPaymentStatus returns the latest transaction for the user.
func GetPaymentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var transaction models.PaymentTransaction
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at DESC").First(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No payment found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment fetched!", transaction)
}

// HasCompletedPayment reports whether the user has paid the screening fee.
func HasCompletedPayment(userID uint) bool {
	var count int64
	database.Database.Db.Model(&models.PaymentTransaction{}).
		Where("user_id = ? AND status = ? AND is_deleted = false", userID, models.PaymentStatusCompleted).
		Count(&count)
	return count > 0
}

// simulateGateway stands in for the real payment provider. Pix always
// settles; cards ending with the configured decline suffix are refused so the
// retry path stays exercisable.
func simulateGateway(t models.PaymentTransaction) (declined bool, reason string) {
	if t.Method == models.PaymentMethodCreditCard &&
		strings.HasSuffix(t.CardLast4, config.AppConfig.DeclineCardSuffix) {
		return true, "Card declined by issuer"
	}
	return false, ""
}
