package email

import (
	"context"
	"sync"

	"bookworm.backend/pkg/logger"
	"go.uber.org/zap"
)

// SentMessage is a verification email captured by MemorySender.
type SentMessage struct {
	To   string
	Code string
}

// MemorySender records messages instead of delivering them. Intended for
// tests and local development.
type MemorySender struct {
	mu       sync.Mutex
	messages []SentMessage

	// Err, when set, is returned from SendOTP to simulate delivery failure.
	Err error
}

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) SendOTP(_ context.Context, to string, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.messages = append(s.messages, SentMessage{To: to, Code: code})
	return nil
}

func (s *MemorySender) Messages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// LogSender writes the code to the application log. Used when no Resend API
// key is configured, so registration keeps working in development.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendOTP(ctx context.Context, to string, code string) error {
	logger.WithContext(ctx).Info("verification code (email delivery disabled)",
		zap.String("to", to),
		zap.String("code", code))
	return nil
}
