//go:build tools

// Package tools pins the code generators used by `go generate`.
// mockgen produces mocks/ from contract/contract.go; importing it here keeps
// its version recorded in go.mod even though nothing imports it at runtime.
package guess_lab

import (
	_ "go.uber.org/mock/mockgen"
)
