package email

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []SendEmailPayload
	err  error
}

func (f *fakeSender) Send(to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, SendEmailPayload{To: to, Subject: subject, HTML: html})
	return nil
}

func TestNewSendEmailTask(t *testing.T) {
	task, err := NewSendEmailTask("  user@example.com ", " Round opened ", "<p>Round 2 is live</p>")
	require.NoError(t, err)
	assert.Equal(t, TypeSendEmail, task.Type())

	var p SendEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "user@example.com", p.To)
	assert.Equal(t, "Round opened", p.Subject)
	assert.Equal(t, "<p>Round 2 is live</p>", p.HTML)
}

func TestHandleSendEmail(t *testing.T) {
	sender := &fakeSender{}
	handler := HandleSendEmail(sender)

	task, err := NewSendEmailTask("user@example.com", "Hello", "<p>hi</p>")
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), task))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "user@example.com", sender.sent[0].To)
	assert.Equal(t, "Hello", sender.sent[0].Subject)
}

func TestHandleSendEmailPropagatesSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	handler := HandleSendEmail(sender)

	task, err := NewSendEmailTask("user@example.com", "Hello", "<p>hi</p>")
	require.NoError(t, err)

	// error surfaces so asynq retries the task
	assert.Error(t, handler(context.Background(), task))
	assert.Empty(t, sender.sent)
}

func TestHandleSendEmailBadPayload(t *testing.T) {
	handler := HandleSendEmail(&fakeSender{})
	task := asynq.NewTask(TypeSendEmail, []byte("not-json"))

	assert.Error(t, handler(context.Background(), task))
}
