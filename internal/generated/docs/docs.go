// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /api-docs.
package docs

import (
	"ordertracker/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Time Tracker API",
	Description:      "Tracks the lifecycle of work orders and their pauses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(servers.RawSpec()),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
