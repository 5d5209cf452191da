// Package build provides domain entities for build information.
package build

import "fmt"

const (
	// AppName is the user-facing application name.
	AppName = "Burrow"
	// AppID is the GTK application id.
	AppID = "com.github.bnema.burrow"
)

// Description is shown in the About window and the CLI help.
const Description = "A small privacy-minded web browser built on GTK4 and WebKit."

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// DisplayVersion renders the version line of the About window.
func (i Info) DisplayVersion() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return "Version " + version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("Version %s (%s)", version, commit)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/burrow"
}

// DonateURL returns the sponsorship page.
func DonateURL() string {
	return "https://github.com/sponsors/bnema"
}
