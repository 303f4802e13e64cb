// Package ports defines the core's external collaborator contracts. The core itself never
// imports an adapter package; every adapter under internal/adapters implements one of
// these interfaces and is wired together in internal/app.
package ports

import (
	"context"
	"io"
)

// Executor runs a single external command, the building block internal/adapters/shell
// uses to turn a command-line declaration into a domain.Body. It is deliberately
// command-shaped rather than domain.Task-shaped: the core's Task contract ends at
// body(ctx) → Result, so nothing in ports or domain needs to know what a "command" is.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command (argv form) in workDir with env in "KEY=VALUE" form, streaming
	// stdout/stderr to the given writers. It returns a non-nil error only for process
	// start/wait failures and non-zero exit codes; the caller is responsible for turning
	// that into a domain.Result.
	Execute(ctx context.Context, command []string, workDir string, env []string, stdout, stderr io.Writer) error
}
