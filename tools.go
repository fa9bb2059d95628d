//go:build tools
// +build tools

// Package chat_metrics pins the code generators used by `go generate`.
//
// mockgen produces the mocks/ package from the repository and contract
// interfaces; importing it here keeps its version recorded in go.mod.
package chat_metrics

import (
	_ "go.uber.org/mock/mockgen"
)
