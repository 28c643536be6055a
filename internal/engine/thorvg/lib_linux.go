//go:build linux

package thorvg

import "os"

func libraryCandidates() []string {
	if path := os.Getenv("THORVG_LIBRARY"); path != "" {
		return []string{path}
	}
	return []string{"libthorvg.so.1", "libthorvg.so.0", "libthorvg.so"}
}
