package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/errors"
)

// DecodeJSON parses a single JSON value. Objects keep their key order and
// numbers are returned as json.Number so they round-trip textually.
func DecodeJSON(data string) (any, error) {
	if strings.TrimSpace(data) == "" {
		return nil, errors.New(errors.ErrMergeParse, "empty JSON document")
	}

	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMergeParse, "invalid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrMergeParse, "invalid JSON: trailing data after top-level value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return t, nil
	}
}

// EncodeJSON renders v with two-space indentation and a trailing newline.
// HTML characters are not escaped.
func EncodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, 0); err != nil {
		return "", errors.Wrap(err, errors.ErrMergeFailed, "failed to encode JSON")
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func writeJSON(buf *bytes.Buffer, v any, depth int) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case *Object:
		if t.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		i := 0
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			indent(buf, depth+1)
			if err := writeJSONScalar(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := writeJSON(buf, pair.Value, depth+1); err != nil {
				return err
			}
			i++
			if i < t.Len() {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteByte('}')
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range t {
			indent(buf, depth+1)
			if err := writeJSON(buf, item, depth+1); err != nil {
				return err
			}
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteByte(']')
	case json.Number:
		buf.WriteString(t.String())
	default:
		return writeJSONScalar(buf, t)
	}
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
	return nil
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
