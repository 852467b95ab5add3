package glob

import "fmt"

// expandBraces expands every `{a,b}` group, nested groups included, into the
// full list of alternatives in left-to-right order.
func expandBraces(p string) ([]string, error) {
	start, depth := -1, 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				return nil, fmt.Errorf("unbalanced '}' at offset %d", i)
			}
			depth--
			if depth > 0 {
				continue
			}
			prefix, body, suffix := p[:start], p[start+1:i], p[i+1:]
			var out []string
			for _, alt := range splitAlternatives(body) {
				expanded, err := expandBraces(prefix + alt + suffix)
				if err != nil {
					return nil, err
				}
				out = append(out, expanded...)
			}
			return out, nil
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '{' at offset %d", start)
	}
	return []string{p}, nil
}

// splitAlternatives splits a brace body on its top-level commas.
func splitAlternatives(body string) []string {
	var parts []string
	depth, last := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, body[last:])
}
