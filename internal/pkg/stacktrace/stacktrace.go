// Package stacktrace trims goroutine dumps down to the frames of this module.
package stacktrace

import "strings"

const marker = "/internal/"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" locations found in
// a stack produced by runtime/debug.Stack.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines)/2)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ".go:") || !strings.Contains(line, marker) {
			continue
		}

		loc, _, _ := strings.Cut(line, " ")
		if i := strings.Index(loc, marker); i != -1 {
			paths = append(paths, loc[i+1:])
		}
	}

	return paths
}
