package version

// Version is the application version, overridable at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "dev"
