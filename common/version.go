// Copyright 2021 JD Fergason
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
)

const ProgramName = "pvframe"

var (
	// commitHash contains the current Git revision.
	// Use mage to build to make sure this gets set.
	commitHash string

	// buildDate contains the date of the current build.
	buildDate string
)

var CurrentVersion = Version{
	Major:  0,
	Minor:  1,
	Patch:  0,
	Suffix: "dev",
}

// Version is a SemVer 2.0.0 compatible version
type Version struct {
	// Increment this for backwards incompatible changes
	Major int

	// Increment this for feature releases
	Minor int

	// Increment this for bug releases
	Patch int

	// Suffix marks pre-release versions; blank for releases
	Suffix string
}

func (v Version) String() string {
	preRelease := ""
	if v.Suffix != "" {
		preRelease = "-" + v.Suffix
	}
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, preRelease)
}

// BuildInfo describes how the running binary was built
type BuildInfo struct {
	Program   string
	Version   Version
	Commit    string
	Date      string
	Platform  string
	GoVersion string
	Modified  bool
}

// CurrentBuild collects build information. Values injected by the magefile
// ldflags win; a plain `go build` falls back to the VCS stamp embedded by the
// go tool, and anything still missing reads "unknown".
func CurrentBuild() BuildInfo {
	info := BuildInfo{
		Program:   ProgramName,
		Version:   CurrentVersion,
		Commit:    commitHash,
		Date:      buildDate,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = setting.Value
				}
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}

	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}

	return info
}

// String renders the version line followed by the build details, e.g.
//
//	pvframe v0.1.0-dev+1a2b3c4 linux/amd64
func (b BuildInfo) String() string {
	version := "v" + b.Version.String()
	if b.Version.Suffix != "" && b.Commit != "unknown" {
		version += "+" + strings.ToLower(shortHash(b.Commit))
	}

	commit := b.Commit
	if b.Modified {
		commit += " (modified)"
	}

	return fmt.Sprintf(`%s %s %s

Build Date: %s
Commit: %s
Built with: %s`,
		b.Program, version, b.Platform, b.Date, commit, b.GoVersion)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// GetDependencyList returns path="version" for every module compiled into
// the binary, sorted
func GetDependencyList() []string {
	var deps []string

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return deps
	}

	for _, dep := range bi.Deps {
		deps = append(deps, fmt.Sprintf("%s=%q", dep.Path, dep.Version))
	}

	sort.Strings(deps)

	return deps
}

// BuildVersionString describes the running binary. The module dependency
// list is included when withDeps is set.
func BuildVersionString(withDeps bool) string {
	versionString := CurrentBuild().String()
	if withDeps {
		versionString += "\n\nDependencies:\n\n" + strings.Join(GetDependencyList(), "\n")
	}
	return versionString
}
