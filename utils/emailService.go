package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"visiocheck/config"
	"visiocheck/screening"
)

// SendEmail sends an HTML email over SMTP. Callers treat failures as
// best-effort: a missing sender config is reported, never fatal.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: VisioCheck <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendResultsEmail sends the screening summary to the user.
func SendResultsEmail(to string, name string, result screening.SessionResult, recommendations []screening.Recommendation) error {
	var rows strings.Builder
	for _, mr := range result.Results {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px 12px;">%s</td><td style="padding:6px 12px;text-align:right;">%d%%</td></tr>`,
			screening.ModuleName(mr.Module), mr.Score,
		))
	}

	var recItems strings.Builder
	for _, rec := range recommendations {
		recItems.WriteString(fmt.Sprintf(`<li><strong>%s</strong> — %s</li>`, rec.Title, rec.Message))
	}

	body := getEmailTemplate("Your Vision Screening Results", fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Your vision screening is complete. Overall score: <strong>%d%%</strong>.</p>
		<table style="border-collapse:collapse;width:100%%;">%s</table>
		<h3>Recommendations</h3>
		<ul>%s</ul>
		<p>This screening does not replace a professional eye examination.</p>
	`, name, result.OverallScore, rows.String(), recItems.String()))

	return SendEmail([]string{to}, "Your VisioCheck Screening Results", body)
}

// getEmailTemplate wraps body content in the shared layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3A8A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3A8A; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">VisioCheck — online vision screening. Not a medical diagnosis.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
