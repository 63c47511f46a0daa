package env

// AppName is the name of the executable.
const AppName = "restorext"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/ostafen/restorext/internal/env.Version=v1.0.0"
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
