package ports

import "go.trai.ch/kiln/internal/core/domain"

// Logger is a type alias, not a redeclaration: domain hosts the interface itself (task
// Contexts are built inside domain/evaluator code that cannot import ports without a
// cycle), and ports re-exports it so adapters and app wiring have one conventional name
// to depend on. Its mock, MockLogger, lives in internal/core/ports/mocks alongside the
// other port mocks.
type Logger = domain.Logger
