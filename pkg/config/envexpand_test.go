package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_TOKEN", "secret-token-value")
	t.Setenv("TEST_HOST", "provider.test")
	t.Setenv("TEST_PORT", "9443")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "oauthToken: {{.TEST_TOKEN}}",
			expected: "oauthToken: secret-token-value",
		},
		{
			name:     "multiple variables in one value",
			input:    "baseUrl: https://{{.TEST_HOST}}:{{.TEST_PORT}}/v1",
			expected: "baseUrl: https://provider.test:9443/v1",
		},
		{
			name:     "missing variable expands empty",
			input:    "value: {{.DOES_NOT_EXIST_XYZ}}",
			expected: "value: ",
		},
		{
			name:     "literal dollar signs are preserved",
			input:    `template: "Total: $ {{.TEST_PORT}} and $PATH and ${ARRAY[0]}"`,
			expected: `template: "Total: $ 9443 and $PATH and ${ARRAY[0]}"`,
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
		{
			name:     "malformed template returns original",
			input:    "broken: {{.UNCLOSED",
			expected: "broken: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
