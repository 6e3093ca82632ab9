package version

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/ndewijer/datetime-formatter/internal/version.Version=...".
var Version = "0.1.0"
