package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SshartakK/AssignMate/app/config"
)

func TestConsoleServiceRecordsMessages(t *testing.T) {
	svc := NewConsoleService(config.EmailConfig{From: "no-reply@assignmate.local"})

	msg := Message{
		To:      "friend@example.com",
		Subject: "Alice recommends you read HW1",
		Body:    "Read HW1 at http://localhost:3000/homeworks/2026/9/1/hw1",
	}
	require.NoError(t, svc.Send(msg))
	require.NoError(t, svc.Send(Message{To: "other@example.com", Subject: "x", Body: "y"}))

	sent := svc.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, msg, sent[0])
}
