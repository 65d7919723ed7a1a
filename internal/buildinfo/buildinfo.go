package buildinfo

import "fmt"

// Set through -ldflags "-X github.com/aalvaropc/unitix/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("unitix %s (commit=%s, date=%s)", Version, Commit, Date)
}
