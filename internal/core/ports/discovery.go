package ports

// ModuleDiscovery resolves a command's override count and entry-point path by walking its
// declaring class's registration table. The config loader consults it once per task at
// load time to populate NamedInfo.Overrides/EnclosingDeclaration; the composition root's
// segment-collision pass (internal/app) consults those two fields again, ahead of
// classification, to disambiguate two named tasks that would otherwise render to
// identical segments, appending EnclosingDeclaration as the "overriden" suffix's path
// when Overrides differs (a class absent from the table gets override count 0, "not
// properly supported for external modules" by design, not a bug).
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_discovery.go -package=mocks -source=discovery.go
type ModuleDiscovery interface {
	// Discover looks up classOfCommand's registered entry points. found is false when the
	// class is unknown to the discovery table.
	Discover(classOfCommand string) (overrideCount int, entryPoint string, found bool)
}
