// Package file provides the TOML-backed settings store.
//
// Settings live in ~/.academic-assistant/config.toml unless another path is
// given. A missing file is not an error; defaults apply.
package file
