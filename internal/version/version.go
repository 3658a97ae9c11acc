// Package version answers "is there a newer commitgate release" for the
// doctor command, plus the semver plumbing that comparison needs.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const releasesURL = "https://api.github.com/repos/marcus/commitgate/releases/latest"

// release is the slice of the GitHub releases API response we care about.
type release struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// CheckResult reports whether an update is available. Error carries any
// network or API failure; the zero result means "nothing to report".
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	UpdateURL      string
	HasUpdate      bool
	Error          error
}

// Check asks GitHub for the latest release tag and compares it against the
// running version. Development builds short-circuit: there is no release to
// compare them against.
func Check(currentVersion string) CheckResult {
	result := CheckResult{CurrentVersion: currentVersion}
	if IsDevelopmentVersion(currentVersion) {
		return result
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(releasesURL)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("github api: %s", resp.Status)
		return result
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		result.Error = err
		return result
	}

	result.LatestVersion = rel.TagName
	result.UpdateURL = rel.HTMLURL
	result.HasUpdate = isNewer(rel.TagName, currentVersion)
	return result
}

// IsDevelopmentVersion reports whether v identifies a non-release build:
// empty, "unknown", "dev", "devel", or a "devel+<sha>" stamp from build info.
func IsDevelopmentVersion(v string) bool {
	switch v {
	case "", "unknown", "dev", "devel":
		return true
	}
	return strings.HasPrefix(v, "devel+")
}

// validVersion accepts v1.2.3 with an optional prerelease tail of
// dot-or-hyphen separated alphanumeric identifiers. Anything else, including
// empty identifiers (v1.2.3-, v1.2.3-beta..rc), is rejected.
var validVersion = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9]+([.-][a-zA-Z0-9]+)*)?$`)

// UpdateCommand returns the go install line for a given release tag. The tag
// is interpolated into a command the user may paste into a shell, so anything
// that fails the version shape check yields "".
func UpdateCommand(version string) string {
	if !validVersion.MatchString(version) {
		return ""
	}
	return fmt.Sprintf(
		"go install -ldflags \"-X main.Version=%s\" github.com/marcus/commitgate@%s",
		version, version,
	)
}
