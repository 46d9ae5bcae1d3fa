// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
	"time"
)

// Sender is the part of Mailer that features depend on, so tests can
// substitute a fake.
type Sender interface {
	Send(email Email) error
}

// ContactNotificationData contains the data for the operator notification
// sent when a visitor submits the contact form.
type ContactNotificationData struct {
	SiteName    string
	Reference   string
	FromName    string
	FromEmail   string
	Subject     string
	Business    string
	Message     string
	SubmittedAt time.Time
}

// ContactNotificationEmail generates both plain text and HTML versions of the
// operator notification for one contact submission.
func ContactNotificationEmail(data ContactNotificationData) (textBody, htmlBody string) {
	textBody = "New contact form submission on " + data.SiteName + ".\n\n" +
		"Reference: " + data.Reference + "\n" +
		"From: " + data.FromName + " <" + data.FromEmail + ">\n"
	if data.Subject != "" {
		textBody += "Subject: " + data.Subject + "\n"
	}
	if data.Business != "" {
		textBody += "About: " + data.Business + "\n"
	}
	textBody += "Received: " + data.SubmittedAt.Format("2 January 2006 15:04 MST") + "\n\n" +
		data.Message + "\n"

	var buf bytes.Buffer
	contactNotificationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ContactAckData contains the data for the acknowledgement sent back to the
// visitor after a successful submission.
type ContactAckData struct {
	SiteName  string
	Reference string
	FromName  string
}

// ContactAckEmail generates both plain text and HTML versions of the
// submitter acknowledgement.
func ContactAckEmail(data ContactAckData) (textBody, htmlBody string) {
	textBody = "Hi " + data.FromName + ",\n\n" +
		"Thanks for getting in touch with " + data.SiteName + ". " +
		"We've received your message and will reply as soon as we can.\n\n" +
		"Your reference: " + data.Reference + "\n\n" +
		"If you need to follow up, quote the reference above.\n"

	var buf bytes.Buffer
	contactAckHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var contactNotificationHTMLTmpl = template.Must(template.New("contact_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New contact submission</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 14px; color: #52525b;">
                <tr><td style="padding: 4px 0; width: 110px; color: #71717a;">Reference</td><td style="padding: 4px 0;">{{.Reference}}</td></tr>
                <tr><td style="padding: 4px 0; color: #71717a;">From</td><td style="padding: 4px 0;">{{.FromName}} &lt;{{.FromEmail}}&gt;</td></tr>
                {{if .Subject}}<tr><td style="padding: 4px 0; color: #71717a;">Subject</td><td style="padding: 4px 0;">{{.Subject}}</td></tr>{{end}}
                {{if .Business}}<tr><td style="padding: 4px 0; color: #71717a;">About</td><td style="padding: 4px 0;">{{.Business}}</td></tr>{{end}}
                <tr><td style="padding: 4px 0; color: #71717a;">Received</td><td style="padding: 4px 0;">{{.SubmittedAt.Format "2 January 2006 15:04 MST"}}</td></tr>
              </table>
              <div style="margin-top: 20px; padding: 16px; background-color: #fafafa; border: 1px solid #e4e4e7; border-radius: 6px; font-size: 15px; line-height: 1.6; color: #18181b; white-space: pre-wrap;">{{.Message}}</div>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var contactAckHTMLTmpl = template.Must(template.New("contact_ack").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Thanks for your message</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Thanks for your message</h2>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                Hi {{.FromName}}, we've received your message and will reply as soon as we can.
              </p>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                Your reference: <strong>{{.Reference}}</strong>
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                If you need to follow up, quote the reference above.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
