package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookworm.backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	m.Run()
}

func TestRenderOTPBody(t *testing.T) {
	body, err := renderOTPBody("482913")
	require.NoError(t, err)
	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "Verify Your Email Address")
	assert.Contains(t, body, "valid for 15 minutes")
	assert.Contains(t, body, "BookWorm Team")
}

func TestRenderOTPBody_EscapesMarkup(t *testing.T) {
	body, err := renderOTPBody(`<script>`)
	require.NoError(t, err)
	assert.False(t, strings.Contains(body, "<script>"))
}

func TestMemorySender_RecordsMessages(t *testing.T) {
	sender := NewMemorySender()

	require.NoError(t, sender.SendOTP(context.Background(), "reader@example.com", "111111"))
	require.NoError(t, sender.SendOTP(context.Background(), "other@example.com", "222222"))

	msgs := sender.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "reader@example.com", msgs[0].To)
	assert.Equal(t, "111111", msgs[0].Code)
	assert.Equal(t, "222222", msgs[1].Code)
}

func TestMemorySender_InjectedError(t *testing.T) {
	sender := NewMemorySender()
	sender.Err = errors.New("smtp down")

	err := sender.SendOTP(context.Background(), "reader@example.com", "111111")
	require.Error(t, err)
	assert.Empty(t, sender.Messages())
}

func TestLogSender_NeverFails(t *testing.T) {
	sender := NewLogSender()
	require.NoError(t, sender.SendOTP(context.Background(), "reader@example.com", "123456"))
}
