package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/bonsai/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bonsai/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bonsai/internal/version.Date={{.Date}}
)

// String returns the version line shown by --version
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
