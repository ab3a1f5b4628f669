// Package api embeds the HTTP contract of the service.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document served at /swagger and used to validate requests.
//
//go:embed openapi.yaml
var OpenAPI []byte
