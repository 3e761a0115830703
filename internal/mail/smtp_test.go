// File: internal/mail/smtp_test.go
package mail

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSMTPMailerSend(t *testing.T) {
	restore := func() { smtpSendMail = smtp.SendMail }

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		smtpSendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		m := NewSMTPMailer("smtp.example.com:587", "no-reply@example.com", "user", "pw")
		err := m.Send(context.Background(), Message{
			To:      "alice@example.com",
			Subject: "Welcome",
			Body:    "hello",
		})
		require.NoError(t, err)
		require.Equal(t, "smtp.example.com:587", gotAddr)
		require.Equal(t, "no-reply@example.com", gotFrom)
		require.Equal(t, []string{"alice@example.com"}, gotTo)
		require.Contains(t, string(gotMsg), "Subject: Welcome\r\n")
		require.Contains(t, string(gotMsg), "To: alice@example.com\r\n")
		require.Contains(t, string(gotMsg), "\r\nhello\r\n")
	})

	t.Run("send error", func(t *testing.T) {
		t.Cleanup(restore)
		smtpSendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("refused")
		}
		m := NewSMTPMailer("smtp.example.com:587", "no-reply@example.com", "", "")
		err := m.Send(context.Background(), Message{To: "a@b.com"})
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Cleanup(restore)
		smtpSendMail = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("should not send")
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		m := NewSMTPMailer("smtp.example.com:587", "no-reply@example.com", "", "")
		require.Error(t, m.Send(ctx, Message{To: "a@b.com"}))
	})
}
