// File: internal/mail/mailer.go
package mail

import "context"

// Message 一封待寄出的純文字郵件
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer 定義郵件傳輸介面
// 方便測試時替換 FakeMailer 實作
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type FakeMailer struct {
	SendFn func(ctx context.Context, msg Message) error
}

// Send 執行 Fake 設定或 panic
func (f *FakeMailer) Send(ctx context.Context, msg Message) error {
	if f.SendFn != nil {
		return f.SendFn(ctx, msg)
	}
	panic("unexpected Send")
}
