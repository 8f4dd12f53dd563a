package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "line", input: "s3cret\n", want: "s3cret"},
		{name: "no newline", input: "s3cret", want: "s3cret"},
		{name: "first line only", input: "one\ntwo\n", want: "one"},
		{name: "trimmed", input: "  s3cret \r\n", want: "s3cret"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var prompt bytes.Buffer
			got, err := readSecret(strings.NewReader(tt.input), &prompt, "pinata.api_key")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, prompt.String(), "no prompt without a terminal")
		})
	}
}
