package email

import (
	"bytes"
	"context"
	"html/template"
)

// Sender delivers a verification code to a recipient address.
type Sender interface {
	SendOTP(ctx context.Context, to string, code string) error
}

const otpSubject = "Verify Your Email Address"

var otpTemplate = template.Must(template.New("otp").Parse(`
    <div style="font-family: Arial, sans-serif;max-width: 600px;margin:0 auto; padding:20px; border:1px solid #ddd;border-radius: 8px;background-color: #000;color:#fff;">
        <h2 style="color: #fff;text-align: center;">Verify Your Email Address</h2>
        <p style="font-size: 16px;color:#ccc;">Dear User,</p>
        <p style="font-size: 16px;color:#ccc;">To complete your registration or login, please use the following verification
            code:</p>
        <div style="text-align: center;margin:20px 0;">
            <span
                style="display: inline-block;font-size: 24px;font-weight: bold;color:#000;padding:10px 20px;border:1px solid #fff;border-radius: 5px;background-color: #fff;">
                {{ .Code }}
            </span>
        </div>
        <p style="font-size: 16px;color:#ccc;">This code is valid for 15 minutes. Please do not share this code with anyone.</p>
        <p style="font-size: 16px;color:#ccc;">If you did not request this email, please ignore it.</p>
        <footer style="margin-top: 20px;text-align: center;font-size: 14px;color:#666;">
            <p>Thank you,<br>BookWorm Team</p>
        </footer>
    </div>
`))

func renderOTPBody(code string) (string, error) {
	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, struct{ Code string }{Code: code}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
