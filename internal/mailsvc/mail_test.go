package mailsvc

import (
	"context"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleRecordsMessages(t *testing.T) {
	c := NewConsole("noreply@example.com", "MDDRC", nil)

	require.NoError(t, c.Send(context.Background(), Message{Subject: "nobody"}))
	require.NoError(t, c.Send(context.Background(), Message{
		To:      []mail.Address{{Name: "Ali", Address: "ali@example.com"}},
		Subject: "Reset",
		Text:    "token",
	}))

	sent := c.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Reset", sent[0].Subject)
}

func TestSendgridPrepare(t *testing.T) {
	s := NewSendgrid("key", "noreply@example.com", "MDDRC", nil)
	m := s.prepare(Message{
		To:      []mail.Address{{Address: "a@example.com"}},
		Subject: "Hello",
		Text:    "plain",
		HTML:    "<b>html</b>",
	})
	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "[MDDRC] Hello", m.Personalizations[0].Subject)
	assert.Len(t, m.Content, 2)
}

func TestNewPicksConsoleWithoutKey(t *testing.T) {
	_, ok := New("", "noreply@example.com", "MDDRC", nil).(*Console)
	assert.True(t, ok)
}
