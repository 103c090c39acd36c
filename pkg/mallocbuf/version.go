package mallocbuf

// Version is populated at build time via ldflags. In development it defaults
// to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the semantic version of this module.
func WrapperVersion() string {
	return Version
}
