package graph

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// templatePattern matches `{{ name }}` placeholders, names optionally
// carrying dotted paths into JSON values.
var templatePattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Resolve substitutes `{{name}}` placeholders from vars. Dotted names walk
// into JSON-parsed values (`{{b.c}}` with b=`{"c":"y"}` yields "y"); array
// steps accept numeric indexes. Unresolved names expand to the empty
// string and are returned so callers can count them as warnings.
func Resolve(template string, vars map[string]string) (string, []string) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	var unresolved []string
	out := templatePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.TrimSpace(templatePattern.FindStringSubmatch(match)[1])
		if value, ok := lookupVar(name, vars); ok {
			return value
		}
		unresolved = append(unresolved, name)
		return ""
	})
	return out, unresolved
}

// lookupVar resolves one placeholder name. An exact match wins — variable
// names may legitimately contain dots or spaces — before dotted-path
// traversal is attempted.
func lookupVar(name string, vars map[string]string) (string, bool) {
	if value, ok := vars[name]; ok {
		return value, true
	}

	head, rest, found := strings.Cut(name, ".")
	if !found {
		return "", false
	}
	raw, ok := vars[head]
	if !ok {
		return "", false
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return "", false
	}

	current := decoded
	for _, segment := range strings.Split(rest, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			next, ok := v[segment]
			if !ok {
				return "", false
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(v) {
				return "", false
			}
			current = v[idx]
		default:
			return "", false
		}
	}

	return stringifyValue(current), true
}

// stringifyValue renders a traversal result for substitution. Strings are
// used verbatim; everything else round-trips through compact JSON.
func stringifyValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
