//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod, not imported by the service

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/swaggo/swag/cmd/swag"
)
