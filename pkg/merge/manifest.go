package merge

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/document"
	"github.com/arthur-debert/copyconfig/pkg/errors"
)

const defaultManifestVersion = "0.0.0"

// Scripts whose names start with anything but a letter or digit, or contain
// characters outside word characters, ':' and '-', are treated as private.
var publicScriptName = regexp.MustCompile(`^[A-Za-z0-9][\w:-]*$`)

// Remote fields copied as-is when present, in output order.
var (
	entryPointFields = []string{"main", "module", "types", "typings", "type", "exports", "bin"}
	toolingFields    = []string{"files", "author", "np"}
)

// packageJSON merges the local manifest over a trimmed-down projection of the
// remote one.
func packageJSON(local, remote any, meta Meta) (any, error) {
	projection, err := projectManifest(remote, meta)
	if err != nil {
		return nil, err
	}
	return document.Defaults(local, projection), nil
}

// aggressivePackageJSON lets the projection win on everything except name and
// version, which keep their local values and fall back to the projected
// defaults.
func aggressivePackageJSON(local, remote any, meta Meta) (any, error) {
	projection, err := projectManifest(remote, meta)
	if err != nil {
		return nil, err
	}

	pinned := document.NewObject()
	rest := document.NewObject()
	for pair := projection.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "name" || pair.Key == "version" {
			pinned.Set(pair.Key, pair.Value)
			continue
		}
		rest.Set(pair.Key, pair.Value)
	}

	base := document.Overlay(pinned, local)
	return document.Overlay(base, rest), nil
}

func projectManifest(remote any, meta Meta) (*document.Object, error) {
	manifest, ok := remote.(*document.Object)
	if !ok {
		return nil, errors.Newf(errors.ErrMergeParse, "remote %s is not a JSON object", meta.Path)
	}

	out := document.NewObject()
	out.Set("name", filepath.Base(meta.LocalRoot))
	out.Set("version", defaultManifestVersion)

	copyFields(out, manifest, entryPointFields)
	copyFields(out, manifest, toolingFields)

	if scripts, ok := objectField(manifest, "scripts"); ok {
		out.Set("scripts", publicScripts(scripts))
	}

	if base, ok := httpsOrigin(meta.LocalOrigin); ok {
		out.Set("homepage", base+"#readme")
		out.Set("repository", document.ObjectOf("type", "git", "url", base+".git"))
	}

	if deps, ok := objectField(manifest, "dependencies"); ok {
		if picked := pickCopyable(deps, meta.Variables.CopyableDependencies); picked.Len() > 0 {
			out.Set("dependencies", picked)
		}
	}
	if deps, ok := objectField(manifest, "devDependencies"); ok {
		if picked := pickCopyable(deps, meta.Variables.CopyableDevDependencies); picked.Len() > 0 {
			out.Set("devDependencies", picked)
		}
	}

	return out, nil
}

func copyFields(dst, src *document.Object, fields []string) {
	for _, field := range fields {
		if v, ok := src.Get(field); ok && v != nil {
			dst.Set(field, document.Clone(v))
		}
	}
}

func objectField(obj *document.Object, field string) (*document.Object, bool) {
	v, ok := obj.Get(field)
	if !ok {
		return nil, false
	}
	child, ok := v.(*document.Object)
	return child, ok
}

func publicScripts(scripts *document.Object) *document.Object {
	out := document.NewObject()
	for pair := scripts.Oldest(); pair != nil; pair = pair.Next() {
		if publicScriptName.MatchString(pair.Key) {
			out.Set(pair.Key, document.Clone(pair.Value))
		}
	}
	return out
}

func pickCopyable(deps *document.Object, copyable []string) *document.Object {
	out := document.NewObject()
	for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
		if containsAny(pair.Key, copyable) {
			out.Set(pair.Key, document.Clone(pair.Value))
		}
	}
	return out
}

func containsAny(name string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// httpsOrigin returns origin without a trailing .git when it is an https URL.
func httpsOrigin(origin string) (string, bool) {
	origin = strings.TrimSpace(origin)
	if !strings.HasPrefix(origin, "https://") {
		return "", false
	}
	return strings.TrimSuffix(origin, ".git"), true
}
