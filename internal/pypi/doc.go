// Package pypi bootstraps the Python environment REK depends on. It captures
// the set of installed packages with `pip freeze`, filters a flat requirements
// list down to the entries that are not yet satisfied, and shells out to pip
// once for the remainder. It is deliberately not a resolver: no version-range
// solving, no transitive dependencies, exact-version or presence-only matching.
package pypi
