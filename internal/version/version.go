package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/richconsole/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/richconsole/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/richconsole/internal/version.Date={{.Date}}
)

// Info returns the version followed by commit and build date, one per line.
func Info() string {
	return Version + "\n  commit: " + Commit + "\n  built:  " + Date
}
