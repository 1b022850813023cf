package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/arcade/pkg/version.version=..."
var version = "dev"

func Get() string {
	return version
}
