package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	t.Run("colors", func(t *testing.T) {
		out := ansiToHTML("\033[32minfo\033[0m done")
		assert.Equal(t, `<pre><span style="color: green;">info</span> done</pre>`, out)
	})

	t.Run("escapes markup", func(t *testing.T) {
		out := ansiToHTML("<b>&</b>")
		assert.Equal(t, "<pre>&lt;b&gt;&amp;&lt;/b&gt;</pre>", out)
	})

	t.Run("unclosed color", func(t *testing.T) {
		out := ansiToHTML("\033[31merr")
		assert.Equal(t, `<pre><span style="color: red;">err</span></pre>`, out)
	})
}

func TestBufferedLogs(t *testing.T) {
	l := New()
	l.Info("[b] hello", zap.Int("faces", 2))

	require.Len(t, l.Logs, 1)
	assert.Contains(t, l.Logs[0], "[b] hello")
	assert.Contains(t, l.Logs[0], "faces")

	l.ClearLogs()
	assert.Nil(t, l.Logs)
}

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zapcore.InfoLevel)
	l.Debug("hidden")
	l.Warn("shown")

	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.Contains(t, buf.String(), "shown")
	assert.Nil(t, l.Logs)
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Error("y")
	})
	assert.Nil(t, l.Logs)
}
