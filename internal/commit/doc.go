// Package commit defines the Conventional Commits type menu and the
// transient draft from which the final commit message is formatted.
//
// The eleven commit types form a fixed, ordered menu; the selected type
// is always resolved back to a typed entry rather than parsed out of
// display text. A Draft collects the type, optional scope, subject,
// optional body, and optional breaking-change description, and renders
// them as:
//
//	type(scope): subject
//
//	body
//
//	BREAKING CHANGE: description
//
// with each optional part omitted when empty. Drafts live for a single
// invocation and are never persisted.
package commit
