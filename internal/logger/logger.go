// File: internal/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options 控制 logger 初始化行為
type Options struct {
	// Level 最低輸出等級：debug、info、warn、error，無法辨識時預設 info
	Level string
	// Pretty 輸出人類可讀格式，production 建議 false（純 JSON）
	Pretty bool
	// Output 輸出目標，預設 os.Stdout
	Output io.Writer
}

// New 依選項建立 zerolog.Logger，由呼叫端注入各元件
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
