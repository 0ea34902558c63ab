package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed: %s", "boom")
	require.Equal(t, "huff: [INFO] shown 2\nhuff: [ERROR] failed: boom\n", buf.String())

	buf.Reset()
	New(&buf, true).Debugf("tree depth %d", 3)
	require.Equal(t, "huff: [DEBUG] tree depth 3\n", buf.String())
}
