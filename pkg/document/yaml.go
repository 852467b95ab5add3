package document

import (
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"gopkg.in/yaml.v3"
)

const mergeKeyTag = "!!merge"

// DecodeYAML parses a single YAML document into the document tree.
//
// Mappings become Objects, sequences become []any and non-null scalars are
// kept as *yaml.Node so their style and tag survive a round trip. Aliases are
// resolved into copies of their anchor. An empty document decodes to nil.
func DecodeYAML(data string) (any, error) {
	dec := yaml.NewDecoder(strings.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrMergeParse, "invalid YAML")
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New(errors.ErrMergeParse, "multi-document YAML is not supported")
	}

	v, err := fromNode(&root)
	if err != nil {
		return nil, err
	}
	if obj, ok := v.(*Object); ok {
		keepDocumentComments(obj, &root)
	}
	return v, nil
}

// keepDocumentComments moves comments owned by the document itself onto its
// first and last keys, so they are written back around the mapping.
func keepDocumentComments(obj *Object, doc *yaml.Node) {
	if obj.Len() == 0 {
		return
	}
	if doc.HeadComment != "" {
		first := obj.Oldest().Key
		c := obj.Comments(first)
		c.Head = joinComments(doc.HeadComment, c.Head)
		obj.SetComments(first, c)
	}
	if doc.FootComment != "" {
		last := obj.Newest().Key
		c := obj.Comments(last)
		c.Foot = joinComments(c.Foot, doc.FootComment)
		obj.SetComments(last, c)
	}
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

func keyComments(n *yaml.Node) Comments {
	return Comments{Head: n.HeadComment, Line: n.LineComment, Foot: n.FootComment}
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			comments := keyComments(keyNode)
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, errors.Newf(errors.ErrMergeParse,
					"unsupported YAML mapping key at line %d: keys must be scalars", keyNode.Line)
			}
			if keyNode.ShortTag() == mergeKeyTag {
				return nil, errors.Newf(errors.ErrMergeParse,
					"unsupported YAML merge key at line %d", keyNode.Line)
			}
			val, err := fromNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, val)
			obj.SetComments(keyNode.Value, comments)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			val, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		scalar := *n
		scalar.Anchor = ""
		return &scalar, nil
	default:
		return nil, errors.Newf(errors.ErrMergeParse, "unsupported YAML node kind %d", n.Kind)
	}
}

// EncodeYAML renders v as a YAML document with two-space indentation.
func EncodeYAML(v any) (string, error) {
	node, err := toNode(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", errors.Wrap(err, errors.ErrMergeFailed, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrMergeFailed, "failed to encode YAML")
	}
	return buf.String(), nil
}

func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *yaml.Node:
		return t, nil
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			val, err := toNode(pair.Value)
			if err != nil {
				return nil, err
			}
			c := t.Comments(pair.Key)
			key := &yaml.Node{
				Kind:        yaml.ScalarNode,
				Tag:         "!!str",
				Value:       pair.Key,
				HeadComment: c.Head,
				LineComment: c.Line,
				FootComment: c.Foot,
			}
			node.Content = append(node.Content, key, val)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			val, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, val)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(t); err != nil {
			return nil, errors.Wrap(err, errors.ErrMergeFailed, "failed to encode YAML value")
		}
		return node, nil
	}
}
