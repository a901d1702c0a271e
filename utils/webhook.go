package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendWebhook posts a JSON payload to the given URL. Delivery is bounded by a
// 10s timeout so a slow receiver can never hold up a caller.
func SendWebhook(url string, payload []byte) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}
	return nil
}
