// Package contacts provides embedded runtime resources.
package contacts

import _ "embed"

// ExampleConfig is the annotated default configuration written by
// "contacts init".
//
//go:embed config.example.yaml
var ExampleConfig []byte
