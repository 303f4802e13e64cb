package ports

import "go.trai.ch/kiln/internal/core/domain"

// ProblemReporter and TestReporter alias the domain interfaces for the same reason
// Logger does: the Context that carries them is built in domain, which cannot import
// ports.
type (
	ProblemReporter = domain.ProblemReporter
	TestReporter    = domain.TestReporter
)
