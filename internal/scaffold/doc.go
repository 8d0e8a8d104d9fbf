// Package scaffold collects package metadata interactively, validates it,
// and writes the RoLib package skeleton (Metadata.luau, License.luau, the
// out/index.luau entry point, and optionally a git repository with README).
package scaffold
