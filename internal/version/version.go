// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (module version, Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// Info is the subset of build info shown by the version command.
type Info struct {
	Module    string
	Revision  string
	Modified  bool
	GoVersion string
}

// Read collects version details from the embedded build info.
func Read() Info {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Info{}
	}

	out := Info{GoVersion: info.GoVersion}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		out.Module = v
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
			// Shorten revision to 7 chars if possible
			if len(out.Revision) > 7 {
				out.Revision = out.Revision[:7]
			}
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}
	return out
}

// String renders the module version, falling back to the VCS revision and
// finally "dev". A modified tree is marked "(dirty)".
func (i Info) String() string {
	base := i.Module
	if base == "" {
		base = i.Revision
	}
	if base == "" {
		return "dev"
	}
	if i.Modified {
		return fmt.Sprintf("%s (dirty)", base)
	}
	return base
}

// GetVersion returns the printable version string.
func GetVersion() string {
	return Read().String()
}
