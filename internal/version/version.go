package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/husi/advent-of-tdd/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/husi/advent-of-tdd/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/husi/advent-of-tdd/internal/version.Date={{.Date}}
)
