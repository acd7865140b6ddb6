package email

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "email:send"

type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (p *SendEmailPayload) Normalize() {
	p.To = strings.TrimSpace(p.To)
	p.Subject = strings.TrimSpace(p.Subject)
}

func NewSendEmailTask(to, subject, html string) (*asynq.Task, error) {
	payload := SendEmailPayload{To: to, Subject: subject, HTML: html}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b), nil
}
