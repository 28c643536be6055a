//go:build darwin

package thorvg

import "os"

func libraryCandidates() []string {
	if path := os.Getenv("THORVG_LIBRARY"); path != "" {
		return []string{path}
	}
	return []string{
		"libthorvg.1.dylib",
		"libthorvg.0.dylib",
		"libthorvg.dylib",
		"/opt/homebrew/lib/libthorvg.dylib",
		"/usr/local/lib/libthorvg.dylib",
	}
}
