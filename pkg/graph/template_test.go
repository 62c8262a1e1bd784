package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		vars       map[string]string
		want       string
		unresolved []string
	}{
		{
			name:     "plain substitution",
			template: "hello {{name}}",
			vars:     map[string]string{"name": "world"},
			want:     "hello world",
		},
		{
			name:     "dotted path into JSON value",
			template: "{{a}} and {{b.c}}",
			vars:     map[string]string{"a": "x", "b": `{"c":"y"}`},
			want:     "x and y",
		},
		{
			name:     "deep path",
			template: "{{doc.meta.title}}",
			vars:     map[string]string{"doc": `{"meta":{"title":"Report"}}`},
			want:     "Report",
		},
		{
			name:     "array index",
			template: "{{scores.1}}",
			vars:     map[string]string{"scores": `[10,20,30]`},
			want:     "20",
		},
		{
			name:       "missing name renders empty",
			template:   "a={{a}} b={{missing}}",
			vars:       map[string]string{"a": "1"},
			want:       "a=1 b=",
			unresolved: []string{"missing"},
		},
		{
			name:       "missing path renders empty",
			template:   "{{b.nope}}",
			vars:       map[string]string{"b": `{"c":"y"}`},
			want:       "",
			unresolved: []string{"b.nope"},
		},
		{
			name:     "exact name with dot wins over traversal",
			template: "{{file.txt}}",
			vars:     map[string]string{"file.txt": "content", "file": `{"txt":"other"}`},
			want:     "content",
		},
		{
			name:     "name with spaces",
			template: "{{Adapted Report}}",
			vars:     map[string]string{"Adapted Report": "body"},
			want:     "body",
		},
		{
			name:     "whitespace inside braces",
			template: "{{ name }}",
			vars:     map[string]string{"name": "x"},
			want:     "x",
		},
		{
			name:     "non-string leaf marshals compact",
			template: "{{cfg.limits}}",
			vars:     map[string]string{"cfg": `{"limits":{"max":5}}`},
			want:     `{"max":5}`,
		},
		{
			name:       "non-JSON value with dotted path is unresolved",
			template:   "{{text.word}}",
			vars:       map[string]string{"text": "plain prose"},
			want:       "",
			unresolved: []string{"text.word"},
		},
		{
			name:     "no placeholders",
			template: "static text",
			vars:     nil,
			want:     "static text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unresolved := Resolve(tt.template, tt.vars)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.unresolved, unresolved)
		})
	}
}
