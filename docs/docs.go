// Package docs embeds the OpenAPI description served next to Swagger UI.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
