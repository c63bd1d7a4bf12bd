package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldEnabled := out, enabled
	t.Cleanup(func() { out, enabled = oldOut, oldEnabled })
	out = &buf

	enabled = false
	Logf("hidden %d", 1)
	assert.Empty(t, buf.String())

	Enable()
	assert.True(t, Enabled())
	Logf("visible %d", 2)
	assert.Regexp(t, `^\[DEBUG \d{2}:\d{2}:\d{2}\.\d{3}\] visible 2\n$`, buf.String())
}
