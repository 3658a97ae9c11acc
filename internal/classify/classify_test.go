package classify

import "testing"

// TestIsUselessKnownSubjects tests the canonical placeholder subjects
func TestIsUselessKnownSubjects(t *testing.T) {
	for _, s := range []string{"wip", "fix", "update", "minor fix", "changes"} {
		if !IsUseless(s) {
			t.Errorf("IsUseless(%q) should be true", s)
		}
	}
}

// TestIsUselessCaseInsensitive tests case folding
func TestIsUselessCaseInsensitive(t *testing.T) {
	for _, s := range []string{"WIP", "Fix", "UPDATE", "Minor Fix"} {
		if !IsUseless(s) {
			t.Errorf("IsUseless(%q) should be true regardless of case", s)
		}
	}
}

// TestIsUselessTrimsWhitespace tests surrounding whitespace handling
func TestIsUselessTrimsWhitespace(t *testing.T) {
	if !IsUseless("  wip  ") {
		t.Error("Surrounding whitespace should not defeat the match")
	}
}

// TestIsUselessRealSubjects tests that real messages pass
func TestIsUselessRealSubjects(t *testing.T) {
	for _, s := range []string{
		"implement retry backoff for flaky uploads",
		"Fix race condition in scheduler teardown",
		"update dependency pins for CVE-2024-1234",
	} {
		if IsUseless(s) {
			t.Errorf("IsUseless(%q) should be false", s)
		}
	}
}

// TestIsUselessExactNotSubstring tests that containment does not flag
func TestIsUselessExactNotSubstring(t *testing.T) {
	if IsUseless("I fixed the fix for the fixture") {
		t.Error("Substring containment must not classify a sentence as useless")
	}
	if IsUseless("wip: add parser") {
		t.Error("Prefixed subjects are not exact matches")
	}
}

// TestIsUselessEmpty tests the no-commits edge case
func TestIsUselessEmpty(t *testing.T) {
	if IsUseless("") {
		t.Error("Empty subject (no commits) is not useless")
	}
	if IsUseless("   ") {
		t.Error("Whitespace-only subject is not useless")
	}
}

// TestListIsACopy tests that mutating the returned list is safe
func TestListIsACopy(t *testing.T) {
	l := List()
	if len(l) == 0 {
		t.Fatal("List should not be empty")
	}
	l[0] = "mutated"
	if !IsUseless("wip") {
		t.Error("Mutating List() result must not affect classification")
	}
}
