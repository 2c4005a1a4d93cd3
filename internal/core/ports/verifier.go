package ports

// SourceVerifier defines the interface for checking that target data exists in the store.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type SourceVerifier interface {
	// MissingSources returns the directories under baseDir that do not exist, in input order.
	MissingSources(baseDir string, dirs []string) ([]string, error)
}
