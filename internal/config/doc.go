// Package config loads the optional mycli configuration file.
//
// The file is never required. With no file present every value falls back
// to Default(), which describes the stock behaviour: resolve "zarf" with
// `which`, then probe it with `zarf --version`.
//
// Both YAML and JSONC are accepted. JSONC (JSON with comments and trailing
// commas) is converted with github.com/tidwall/jsonc before being handed to
// encoding/json.
package config
