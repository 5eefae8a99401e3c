package version

// Version is the actionsctl release, overridden at build time with
// -ldflags "-X github.com/idpkit/actionsctl/internal/version.Version=...".
var Version = "0.3.0-dev"
