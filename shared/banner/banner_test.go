package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawTitlePlain(t *testing.T) {
	var out bytes.Buffer
	DrawTitle(&out, "Starting Release Process: v2.1.0", false)

	rule := "----------------------------------------"
	assert.Equal(t, rule+"\nStarting Release Process: v2.1.0\n"+rule+"\n", out.String())
}

func TestDrawTitleColored(t *testing.T) {
	var out bytes.Buffer
	DrawTitle(&out, "Release v1.0.0 created successfully!", true)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Release v1.0.0 created successfully!")
}
