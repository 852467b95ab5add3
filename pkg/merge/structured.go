package merge

import (
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/document"
	"github.com/arthur-debert/copyconfig/pkg/errors"
)

type codec struct {
	name   string
	decode func(string) (any, error)
	encode func(any) (string, error)
}

var (
	jsonCodec = codec{name: "JSON", decode: document.DecodeJSON, encode: document.EncodeJSON}
	yamlCodec = codec{name: "YAML", decode: document.DecodeYAML, encode: document.EncodeYAML}
)

// treeMerge combines the parsed local and remote documents.
type treeMerge func(local, remote any, meta Meta) (any, error)

// structured builds a Strategy that parses both sides with c, merges the trees
// and serializes the result with the same codec. A missing or blank local file
// is passed to fn as nil, and a nil result merges to nothing.
func structured(c codec, fn treeMerge) Strategy {
	return func(in Input) (string, error) {
		remote, err := c.decode(in.Remote)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrMergeParse, "failed to parse remote %s %s", c.name, in.Meta.Path)
		}

		var local any
		if in.Local != nil && strings.TrimSpace(*in.Local) != "" {
			local, err = c.decode(*in.Local)
			if err != nil {
				return "", errors.Wrapf(err, errors.ErrMergeParse, "failed to parse local %s %s", c.name, in.Meta.Path)
			}
		}

		merged, err := fn(local, remote, in.Meta)
		if err != nil {
			return "", err
		}
		if merged == nil {
			return "", nil
		}
		return c.encode(merged)
	}
}

func defaultsMerge(local, remote any, _ Meta) (any, error) {
	return document.Defaults(local, remote), nil
}

func aggressiveMerge(local, remote any, _ Meta) (any, error) {
	return document.Overlay(local, remote), nil
}
