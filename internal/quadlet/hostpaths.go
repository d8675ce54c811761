package quadlet

import (
	"iter"
	"strings"
)

// noPaths is the empty host path sequence, used by kinds that embed none.
func noPaths(func(*string) bool) {}

// isHostPath reports whether a mount source or device refers to a location
// on the host filesystem rather than a named resource.
func isHostPath(s string) bool {
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../") ||
		strings.HasPrefix(s, "~/") ||
		s == "."
}

// pathsOf yields handles to each of the given fields that is non-empty.
// The pointers alias the receiver's storage; see HostPathProvider.
func pathsOf(fields ...*string) iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for _, f := range fields {
			if *f == "" {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}
