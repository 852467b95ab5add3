package document

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON/YAML mapping. Keys decoded from YAML
// also carry the comments written around them.
type Object struct {
	*orderedmap.OrderedMap[string, any]
	comments map[string]Comments
}

// Comments are the comments attached to one mapping key.
type Comments struct {
	Head string
	Line string
	Foot string
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{OrderedMap: orderedmap.New[string, any]()}
}

// Comments returns the comments recorded for key.
func (o *Object) Comments(key string) Comments {
	return o.comments[key]
}

// SetComments records the comments for key. Zero Comments clear the entry.
func (o *Object) SetComments(key string, c Comments) {
	if c == (Comments{}) {
		delete(o.comments, key)
		return
	}
	if o.comments == nil {
		o.comments = make(map[string]Comments)
	}
	o.comments[key] = c
}

// keepComments copies the comments for key onto out, taking them from the
// first source that has any.
func keepComments(out *Object, key string, sources ...*Object) {
	for _, src := range sources {
		if c := src.Comments(key); c != (Comments{}) {
			out.SetComments(key, c)
			return
		}
	}
}

// ObjectOf builds an Object from alternating key/value arguments.
func ObjectOf(kv ...any) *Object {
	obj := NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		obj.Set(kv[i].(string), kv[i+1])
	}
	return obj
}

// Keys returns the keys of obj in order.
func Keys(obj *Object) []string {
	keys := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone deep-copies objects and arrays. Scalars are shared.
func Clone(v any) any {
	switch t := v.(type) {
	case *Object:
		out := NewObject()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, Clone(pair.Value))
			keepComments(out, pair.Key, t)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// Defaults merges remote into local with local winning: every value local
// holds is kept, nested objects are merged recursively, and anything local is
// missing is filled in from remote. A null counts as missing.
func Defaults(local, remote any) any {
	if local == nil {
		return Clone(remote)
	}
	lo, lok := local.(*Object)
	ro, rok := remote.(*Object)
	if !lok || !rok {
		return Clone(local)
	}

	out := NewObject()
	for pair := lo.Oldest(); pair != nil; pair = pair.Next() {
		rv, _ := ro.Get(pair.Key)
		out.Set(pair.Key, Defaults(pair.Value, rv))
		keepComments(out, pair.Key, lo, ro)
	}
	for pair := ro.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := lo.Get(pair.Key); !ok {
			out.Set(pair.Key, Clone(pair.Value))
			keepComments(out, pair.Key, ro)
		}
	}
	return out
}

// Overlay merges remote over local with remote winning on every value it
// holds. Keys only local has are kept. A remote null leaves local untouched.
// Arrays are replaced, never concatenated.
func Overlay(local, remote any) any {
	if remote == nil {
		return Clone(local)
	}
	lo, lok := local.(*Object)
	ro, rok := remote.(*Object)
	if !lok || !rok {
		return Clone(remote)
	}

	out := NewObject()
	for pair := lo.Oldest(); pair != nil; pair = pair.Next() {
		keepComments(out, pair.Key, lo, ro)
		if rv, ok := ro.Get(pair.Key); ok {
			out.Set(pair.Key, Overlay(pair.Value, rv))
			continue
		}
		out.Set(pair.Key, Clone(pair.Value))
	}
	for pair := ro.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := lo.Get(pair.Key); !ok {
			out.Set(pair.Key, Clone(pair.Value))
			keepComments(out, pair.Key, ro)
		}
	}
	return out
}
