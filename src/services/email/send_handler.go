package email

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// HandleSendEmail delivers one queued email via the injected sender.
// A transport failure is returned so asynq retries the task.
func HandleSendEmail(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SendEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Println("❌ email payload decode error:", err)
			return err
		}

		if err := sender.Send(p.To, p.Subject, p.HTML); err != nil {
			log.Printf("❌ send mail failed to %s: %v", p.To, err)
			return err
		}

		log.Println("✅ email sent to:", p.To)
		return nil
	}
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ package email
func RegisterHandlers(mux *asynq.ServeMux) error {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		return err // ถ้า SMTP env ยังไม่ครบ จะ fail ตอน start worker
	}

	mux.HandleFunc(TypeSendEmail, HandleSendEmail(sender))
	return nil
}
