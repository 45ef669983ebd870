package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("filters below min level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger("test", LevelWarn)
		l.SetOutput(&buf)

		l.Info("hidden")
		l.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "[WARN]")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("writes fields in sorted order", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger("test", LevelDebug)
		l.SetOutput(&buf)

		l.WithFields(map[string]interface{}{"zeta": 1, "alpha": "a"}).Infof("moved %d", 3)

		line := buf.String()
		assert.Contains(t, line, "moved 3 service=test")
		assert.Less(t, strings.Index(line, "alpha=a"), strings.Index(line, "zeta=1"))
	})

	t.Run("derived loggers share output and keep parent fields", func(t *testing.T) {
		var buf bytes.Buffer
		parent := NewLogger("test", LevelDebug).WithField("variant_id", "v1")
		child := parent.WithField("image_id", "i1")
		parent.SetOutput(&buf)

		child.Error("boom")

		assert.Contains(t, buf.String(), "variant_id=v1")
		assert.Contains(t, buf.String(), "image_id=i1")
	})

	t.Run("context without span adds nothing", func(t *testing.T) {
		l := NewLogger("test", LevelDebug)
		assert.Same(t, l, l.WithContext(context.Background()))
	})
}
