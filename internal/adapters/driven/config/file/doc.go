// Package file provides a TOML-backed implementation of the settings
// store, persisted under the textlens config directory. It supports
// live reload through filesystem notifications.
package file
