package documents

import (
	"regexp"
	"strings"
)

// Placeholder tokens look like {{name}} or {{ employee.firstName }}.
// Whitespace around the key is insignificant.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// Placeholders returns every distinct key referenced by the template, in
// discovery order.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var keys []string

	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		key := m[1]
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// Interpolate resolves every placeholder in the template against the two
// sources and returns the merged field set for the document preview. User
// input wins over autofilled values; a key neither source can supply stays
// as the literal placeholder text so the UI can flag the document as
// incomplete. The function is pure: identical inputs produce an identical
// result regardless of the order keys are discovered in.
//
// Dotted keys nest one level under the key's first segment. A key with more
// than one dot still only uses its first two segments ("a.b.c" resolves
// root "a", nested "b", and "c" is dropped). Matches the longstanding
// behavior of the offer-letter templates; see the interpolation tests.
func Interpolate(template string, userInput, autofilled Source) Fields {
	out := make(Fields)

	for _, key := range Placeholders(template) {
		if !strings.Contains(key, ".") {
			out[key] = String(resolveScalar(key, userInput, autofilled))
			continue
		}

		parts := strings.Split(key, ".")
		root, nested := parts[0], parts[1]
		val := resolveNested(root, nested, key, userInput, autofilled)

		if existing, ok := out[root]; ok && existing.kind == KindObject {
			existing.fields[nested] = val
			continue
		}
		out[root] = Object(map[string]string{nested: val})
	}

	return out
}

func resolveScalar(key string, userInput, autofilled Source) string {
	if v, ok := userInput[key]; ok {
		if s, ok := v.Scalar(); ok {
			return s
		}
	}
	if v, ok := autofilled[key]; ok {
		if s, ok := v.Scalar(); ok {
			return s
		}
	}
	return unresolved(key)
}

func resolveNested(root, nested, fullKey string, userInput, autofilled Source) string {
	if s, ok := userInput[root].Field(nested); ok {
		return s
	}
	if s, ok := autofilled[root].Field(nested); ok {
		return s
	}
	return unresolved(fullKey)
}

func unresolved(key string) string {
	return "{{" + key + "}}"
}
