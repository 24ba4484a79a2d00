// ABOUTME: Version constants for jes4go binaries
// ABOUTME: Reported by --version flags and the explorer title bar
package version

const (
	// Version is the release of the toolkit
	Version = "0.3.0"

	// Product is the name shown to users
	Product = "jes4go"
)

// String renders the product and version, e.g. "jes4go 0.3.0"
func String() string {
	return Product + " " + Version
}
