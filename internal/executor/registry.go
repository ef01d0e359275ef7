package executor

import (
	"context"
	"maps"
	"slices"
)

// SiteRepoKey is the invocation key of the Site repository routine.
const SiteRepoKey = "handle_site_repo"

// Routine is a composite operation run for a custom command.
type Routine func(ctx context.Context) error

// Registry maps custom invocation keys to routines.
type Registry map[string]Routine

// DefaultRegistry returns the built-in custom commands.
func DefaultRegistry(site *SiteRepo) Registry {
	return Registry{
		SiteRepoKey: site.Run,
	}
}

// Known reports whether key has a registered routine.
func (r Registry) Known(key string) bool {
	_, ok := r[key]
	return ok
}

// Keys returns the registered keys, sorted.
func (r Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}
