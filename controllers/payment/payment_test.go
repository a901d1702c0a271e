package paymentController

import (
	"testing"

	"visiocheck/config"
	"visiocheck/models"

	"github.com/stretchr/testify/assert"
)

func TestSimulateGateway(t *testing.T) {
	config.AppConfig = &config.Config{DeclineCardSuffix: "0002"}

	tests := []struct {
		name        string
		transaction models.PaymentTransaction
		declined    bool
	}{
		{"pix always settles", models.PaymentTransaction{Method: models.PaymentMethodPix}, false},
		{"regular card settles", models.PaymentTransaction{Method: models.PaymentMethodCreditCard, CardLast4: "4242"}, false},
		{"decline suffix is refused", models.PaymentTransaction{Method: models.PaymentMethodCreditCard, CardLast4: "0002"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			declined, reason := simulateGateway(tt.transaction)
			assert.Equal(t, tt.declined, declined)
			if declined {
				assert.NotEmpty(t, reason)
			}
		})
	}
}
