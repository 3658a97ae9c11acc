// Package classify decides whether a commit subject line is a low-information
// placeholder ("wip", "fix") that deserves a nag.
package classify

import "strings"

// uselessSubjects is the curated list of low-information commit subjects.
// Matching is exact (after trimming and lowercasing), not substring: a real
// sentence that happens to contain "fix" is a useful message.
var uselessSubjects = []string{
	"wip",
	"fix",
	"fixes",
	"update",
	"updates",
	"minor fix",
	"minor fixes",
	"changes",
	"change",
	"stuff",
	"cleanup",
	"clean up",
	"temp",
	"tmp",
	"commit",
	"asdf",
}

// IsUseless reports whether subject matches the useless-message list.
// The comparison is case-insensitive and ignores surrounding whitespace.
// An empty subject (no commits yet) is not useless.
func IsUseless(subject string) bool {
	s := strings.ToLower(strings.TrimSpace(subject))
	if s == "" {
		return false
	}
	for _, u := range uselessSubjects {
		if s == u {
			return true
		}
	}
	return false
}

// List returns a copy of the useless-subject list, for display.
func List() []string {
	out := make([]string, len(uselessSubjects))
	copy(out, uselessSubjects)
	return out
}
