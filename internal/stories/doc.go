// Package stories holds the fetch lifecycle of a story list.
//
// State is only ever changed by Apply, which folds one Event into a new
// State. Controller decides which adapter resolutions are allowed to become
// events: only the outcome of the most recently issued request is folded,
// late responses for older requests are dropped and counted.
//
// Nothing in this package is safe for concurrent use. A single owner (the
// UI update loop or a headless runner) must serialize every call.
package stories
