package commit

import (
	"fmt"
	"strings"

	"github.com/bashhack/gitcz/internal/errors"
)

// Type is one entry of the Conventional Commits type menu.
type Type struct {
	Name        string
	Description string
}

// Types is the fixed, ordered commit type menu. It is never mutated at
// runtime; the selected type is always one of these entries.
var Types = []Type{
	{"feat", "new feature"},
	{"fix", "bug fix"},
	{"docs", "documentation only"},
	{"style", "non-semantic code formatting"},
	{"refactor", "neither fixes nor adds a feature"},
	{"perf", "performance improvement"},
	{"test", "test-only change"},
	{"build", "build system / external dependency change"},
	{"ci", "CI configuration change"},
	{"chore", "other non-src/test change"},
	{"revert", "reverts a prior commit"},
}

// MenuLines renders the type menu as the candidate lines fed to the
// fuzzy selector, one "name: description" entry per line.
func MenuLines() []string {
	lines := make([]string, len(Types))
	for i, t := range Types {
		lines[i] = fmt.Sprintf("%s: %s", t.Name, t.Description)
	}
	return lines
}

// TypeFromLine resolves a selected menu line back to its typed entry.
// Only the token before the first colon is significant, so the selector
// is free to return the full display line.
func TypeFromLine(line string) (Type, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(line), ":")
	return TypeFromName(strings.TrimSpace(name))
}

// TypeFromName looks up a commit type by its exact name.
func TypeFromName(name string) (Type, bool) {
	for _, t := range Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

// Draft is the transient commit message under construction. It is built
// once per invocation and discarded after Message() produces the final
// string; it is never persisted.
type Draft struct {
	Type           Type
	Scope          string
	Subject        string
	Body           string
	BreakingChange string
}

// Validate checks the invariants a draft must hold before a commit is
// attempted: a known type and a non-empty subject.
func (d Draft) Validate() error {
	if _, ok := TypeFromName(d.Type.Name); !ok {
		return errors.Wrapf(errors.ErrNoTypeSelected, "unknown commit type %q", d.Type.Name)
	}
	if strings.TrimSpace(d.Subject) == "" {
		return errors.ErrEmptySubject
	}
	return nil
}

// Message assembles the Conventional Commits message:
//
//	type(scope): subject
//
//	body
//
//	BREAKING CHANGE: description
//
// The scope parenthetical, body paragraph, and breaking-change footer are
// each omitted when empty.
func (d Draft) Message() string {
	var b strings.Builder

	b.WriteString(d.Type.Name)
	if d.Scope != "" {
		b.WriteString("(")
		b.WriteString(d.Scope)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(d.Subject)

	if d.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Body)
	}

	if d.BreakingChange != "" {
		b.WriteString("\n\n")
		b.WriteString("BREAKING CHANGE: ")
		b.WriteString(d.BreakingChange)
	}

	return b.String()
}
