package npmkit

import "strings"

// typesPrefix is the scope under which type-declaration packages are
// published.
const typesPrefix = "@types/"

// scopeSep joins the original scope and name inside a types package name,
// since a package name cannot itself contain a slash.
const scopeSep = "__"

// TypesPackageName returns the name of the type-declarations package for an
// npm package. Scoped names are flattened into the @types scope:
//
//	TypesPackageName("@foo/bar") == "@types/foo__bar"
//	TypesPackageName("bar")      == "@types/bar"
func TypesPackageName(name string) string {
	if scoped, ok := strings.CutPrefix(name, "@"); ok {
		if scope, rest, ok := strings.Cut(scoped, "/"); ok {
			return typesPrefix + scope + scopeSep + rest
		}
	}
	return typesPrefix + name
}

// PackageName is the inverse of [TypesPackageName]: it returns the npm
// package a type-declarations package describes. Names outside the @types
// scope are returned unchanged.
//
//	PackageName("@types/foo__bar") == "@foo/bar"
//	PackageName("@types/bar")      == "bar"
//	PackageName("bar")             == "bar"
func PackageName(typesName string) string {
	rest, ok := strings.CutPrefix(typesName, typesPrefix)
	if !ok {
		return typesName
	}
	if scope, name, ok := strings.Cut(rest, scopeSep); ok {
		return "@" + scope + "/" + name
	}
	return rest
}
