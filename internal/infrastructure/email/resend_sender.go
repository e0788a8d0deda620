package email

import (
	"context"
	"time"

	"bookworm.backend/pkg/logger"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// ResendSender delivers verification emails through the Resend API.
type ResendSender struct {
	client  *resend.Client
	from    string
	timeout time.Duration
}

func NewResendSender(apiKey, from string, timeout time.Duration) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		from:    from,
		timeout: timeout,
	}
}

func (s *ResendSender) SendOTP(ctx context.Context, to string, code string) error {
	body, err := renderOTPBody(code)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: otpSubject,
		Html:    body,
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// The Resend client has no context-aware send, so the call runs in a
	// goroutine and the deadline is enforced here.
	done := make(chan error, 1)
	go func() {
		_, sendErr := s.client.Emails.Send(params)
		done <- sendErr
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.WithContext(ctx).Error("failed to send verification email",
				zap.String("to", to),
				zap.Error(err))
		}
		return err
	case <-ctx.Done():
		logger.WithContext(ctx).Error("verification email send timed out",
			zap.String("to", to))
		return ctx.Err()
	}
}
