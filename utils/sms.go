package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"

	"github.com/go-resty/resty/v2"
)

// SendSMS delivers a text message through the hosted SMS gateway. Callers
// treat delivery as best-effort: failures are logged and returned, never
// retried here.
func SendSMS(mobile, message string) error {
	if config.AppConfig.SmsApiKey == "" {
		log.Printf("SMS not configured, skipping message to %s", mobile)
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.SmsApiKey,
			"route":         "q",
			"sender_id":     config.AppConfig.SmsSenderID,
			"message":       message,
			"numbers":       mobile,
		}).
		Get(config.AppConfig.SmsApiUrl)

	if err != nil {
		log.Printf("Error while sending SMS: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}

	log.Println("SMS sent successfully to", mobile)
	return nil
}

// SendMatchReceiptSMS texts the customer a receipt for a new match credit.
func SendMatchReceiptSMS(mobile, customerName string, totalCredits, threshold float64, receiptNumber string) error {
	message := fmt.Sprintf(
		"Hi %s, your match credit is active! Total credits: %.2f. Redeemable after %.2f play-through. Receipt: %s",
		customerName, totalCredits, threshold, receiptNumber,
	)
	return SendSMS(mobile, message)
}

// SendMatchRedeemedSMS confirms redemption of a match credit.
func SendMatchRedeemedSMS(mobile, customerName string, totalCredits float64) error {
	message := fmt.Sprintf(
		"Hi %s, your match credit of %.2f has been redeemed. Thanks for playing!",
		customerName, totalCredits,
	)
	return SendSMS(mobile, message)
}
