package merge

import (
	"strings"
	"unicode"
)

func replace(in Input) (string, error) {
	return in.Remote, nil
}

// preferLocal keeps the local file whenever it exists, even when empty.
func preferLocal(in Input) (string, error) {
	if in.Local != nil {
		return *in.Local, nil
	}
	return in.Remote, nil
}

// concat keeps every remote line in order and appends the local lines that do
// not match a remote line once surrounding whitespace is ignored.
func concat(in Input) (string, error) {
	remoteLines := strings.Split(in.Remote, "\n")
	seen := make(map[string]struct{}, len(remoteLines))
	for _, line := range remoteLines {
		seen[strings.TrimSpace(line)] = struct{}{}
	}

	localLines := []string{""}
	if in.Local != nil {
		localLines = strings.Split(*in.Local, "\n")
	}

	combined := append([]string{}, remoteLines...)
	for _, line := range localLines {
		if _, ok := seen[strings.TrimSpace(line)]; ok {
			continue
		}
		combined = append(combined, line)
	}

	return strings.TrimRightFunc(strings.Join(combined, "\n"), unicode.IsSpace), nil
}
