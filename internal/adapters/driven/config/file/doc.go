// Package file provides the file-backed ConfigStore. Settings are kept in
// a TOML document under the relnote config directory.
package file
