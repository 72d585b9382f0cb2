// Package stacktrace trims goroutine stack dumps down to this module's frames.
package stacktrace

import "strings"

// InternalPaths returns the "internal/...go:line" locations found in a raw
// debug.Stack dump, in call order.
func InternalPaths(stack []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ".go:") {
			continue
		}

		_, rel, found := strings.Cut(line, "/internal/")
		if !found {
			continue
		}

		if sp := strings.IndexByte(rel, ' '); sp != -1 {
			rel = rel[:sp]
		}
		paths = append(paths, "internal/"+rel)
	}
	return paths
}
