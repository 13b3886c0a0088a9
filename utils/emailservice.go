package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
)

// SendEmail sends a generic HTML email over SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	smtpHost := config.AppConfig.SmtpHost
	smtpPort := config.AppConfig.SmtpPort

	if from == "" || password == "" {
		fmt.Println("Email not configured, skipping:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: GameOn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	fmt.Println("Email sent successfully to", strings.Join(to, ","))
	return nil
}

// getEmailTemplate wraps body content in the standard GameOn email frame
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">%s</h2>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">GameOn Venue Management</p>
				</div>
			</body>
		</html>
	`, title, bodyContent)
}

// SendDailySummaryEmail mails a store owner the previous day's numbers.
func SendDailySummaryEmail(email, ownerName, storeName, day string, matchesCreated int64, cashIn, cashOut, matchedTotal float64) error {
	subject := fmt.Sprintf("Daily Summary for %s - %s", storeName, day)

	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 14px; color: #666666;">Here is the summary for <b>%s</b> on %s:</p>
		<table style="width: 100%%; font-size: 14px; color: #555555; border-collapse: collapse;">
			<tr><td style="padding: 6px 0;">Match credits created</td><td style="text-align: right;">%d</td></tr>
			<tr><td style="padding: 6px 0;">Cash in</td><td style="text-align: right;">%.2f</td></tr>
			<tr><td style="padding: 6px 0;">Cash out</td><td style="text-align: right;">%.2f</td></tr>
			<tr><td style="padding: 6px 0;">Credits matched</td><td style="text-align: right;">%.2f</td></tr>
		</table>
	`, ownerName, storeName, day, matchesCreated, cashIn, cashOut, matchedTotal)

	return SendEmail([]string{email}, subject, getEmailTemplate("📊 Daily Store Summary", body))
}
