// Package fzf integrates the external fuzzy-selection utility.
//
// The selector is an opaque collaborator invoked through its standard
// command-line contract: candidates go in on stdin, one per line, an
// optional --query seeds the search, and the chosen line comes back on
// stdout. fzf renders its interface on the controlling terminal, so
// capturing stdout does not break interactivity.
//
// Cancellation (interrupt or no match, exit statuses 130 and 1) is
// reported as an empty selection with a nil error; callers decide what
// an empty selection means for their flow.
package fzf
