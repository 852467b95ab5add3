// Package glob is the glob primitive used by the rule engine.
//
// Patterns are evaluated relative to a root directory and follow the usual
// conventions of config-sync tooling:
//
//   - `{a,b}` alternatives, including nested groups and a bare `.` alternative
//     (`{.,.vscode}/*.json` matches both `x.json` and `.vscode/x.json`)
//   - a leading `./` is dropped, so `./package.json` is `package.json`
//   - `**` matches any number of directories, including none
//   - `*` and `?` match dotfiles; there is no special dot handling
//
// Results are relative, slash-separated and sorted. `.git` directories are
// never descended into.
package glob
