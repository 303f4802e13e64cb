package ports

// OutputVerifier backs the evaluator's supplementary output-hash check: a labelled
// terminal that declares Outputs gets those files verified present and content-hashed on
// every cache hit, in addition to the InputsHash comparison invariant I2 already
// requires.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type OutputVerifier interface {
	// VerifyOutputs reports whether every declared output exists under root.
	VerifyOutputs(root string, outputs []string) (bool, error)

	// HashOutputs returns a deterministic hash of the declared outputs' contents, order
	// independent of the caller's slice order.
	HashOutputs(root string, outputs []string) (string, error)
}
