// Package history remembers the scopes of past commits so the scope
// prompt can suggest them. Usage times live in a small JSON state file
// under the XDG state directory, pruned to a fixed cap. History is a
// convenience: loading never fails the commit flow, it just comes back
// empty.
package history
