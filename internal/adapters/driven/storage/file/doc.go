// Package file loads the academic dataset from a JSON or YAML document.
//
// Both formats are decoded with gopkg.in/yaml.v3 (JSON is a subset of
// YAML), walking mapping nodes directly so that table order in the file
// becomes iteration order in memory.
//
// When no path is configured the embedded sample dataset is used.
package file
