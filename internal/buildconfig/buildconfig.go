package buildconfig

import "fmt"

// Injected at build time:
//
//	go build -ldflags "-X github.com/Harshitk-cp/decidable/internal/buildconfig.version=v0.3.0"
var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// String renders the version line printed by the CLI.
func String(app string) string {
	return fmt.Sprintf("%s %s (commit %s)", app, version, commit)
}
