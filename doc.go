// Package npmkit provides small building blocks for tools that work with npm
// package metadata: asynchronous memoization of registry lookups, the naming
// convention between a package and its @types counterpart, and normalization
// of workspace declarations.
//
// When a tool resolves the same package many times — walking a dependency
// graph, resolving every workspace of a monorepo — npmkit ensures each
// lookup runs once and the result is shared. Wrap the lookup with [Memoize]:
//
//	fetch := npmkit.Memoize(func(name string) (*Metadata, error) {
//	    return registry.Fetch(name)
//	})
//
//	meta, err := fetch("@foo/bar")
//
// Concurrent callers for the same key share a single in-flight call.
// Successful results are cached for the lifetime of the wrapper.
// Errors are not cached, so a failed lookup can be retried.
//
// [All] resolves a batch of keys concurrently through a memoized lookup,
// and [TypesPackageName] / [PackageName] convert between a package name and
// its type-declarations counterpart ("@foo/bar" <-> "@types/foo__bar").
//
// The slicex and mapx subpackages hold the generic slice and map helpers the
// rest of the toolkit is built from.
package npmkit
