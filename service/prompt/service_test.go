package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/cmake-release/model"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: "yes\n", want: true},
		{input: " YES \r\n", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "yep\n", want: false},
		{input: "", want: false},
		{input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			svc := NewServiceWithIO(strings.NewReader(tt.input), &out, false)
			got, err := svc.Confirm(context.Background(), "Continue?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? (y/n): ", out.String())
		})
	}
}

func TestConfirmAssumeYes(t *testing.T) {
	var out bytes.Buffer
	svc := NewServiceWithIO(strings.NewReader("n\n"), &out, true)

	got, err := svc.Confirm(context.Background(), "Delete?")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "Delete? (y/n): y\n", out.String())
}

func TestConfirmInterrupted(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewServiceWithIO(pr, io.Discard, false)
	_, err := svc.Confirm(ctx, "Delete?")
	assert.ErrorIs(t, err, model.ErrInterrupted)
}
