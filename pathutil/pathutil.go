// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/azd-which/which"
)

// RefreshPATH refreshes the current process's PATH from the system and returns it.
func RefreshPATH() (string, error) {
	if runtime.GOOS == "windows" {
		return refreshWindowsPATH()
	}
	return os.Getenv(which.EnvPath), nil
}

// refreshWindowsPATH rebuilds PATH from the Machine and User registry values.
func refreshWindowsPATH() (string, error) {
	machine, err := registryPath("Machine")
	if err != nil {
		return "", err
	}
	user, err := registryPath("User")
	if err != nil {
		return "", err
	}

	newPath := combinePaths(";", machine, user)
	if err := os.Setenv(which.EnvPath, newPath); err != nil {
		return "", fmt.Errorf("failed to set PATH: %w", err)
	}
	return newPath, nil
}

// registryPath reads PATH for one registry scope through PowerShell.
func registryPath(scope string) (string, error) {
	// RemoteSigned is more restrictive than Bypass and sufficient for a one-line command.
	out, err := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "RemoteSigned", "-Command",
		fmt.Sprintf("[Environment]::GetEnvironmentVariable('PATH', '%s')", scope)).Output()
	if err != nil {
		return "", fmt.Errorf("failed to get %s PATH: %w", strings.ToLower(scope), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// combinePaths joins the non-empty parts with sep.
func combinePaths(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// FindToolInPath searches PATH for a tool.
// Returns the path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	path, err := which.Which(toolName, which.WithNoThrow())
	if err != nil {
		return ""
	}
	return path
}

// SystemSearchDirs returns common installation directories that are often
// missing from PATH.
func SystemSearchDirs() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\Program Files\nodejs`,
			`C:\Program Files\Docker\Docker\resources\bin`,
			`C:\Program Files\Git\cmd`,
			`C:\Program Files\Python312`,
			`C:\Program Files\Python311`,
			`C:\Program Files\Python310`,
			`C:\Program Files\dotnet`,
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Python"),
			filepath.Join(os.Getenv("APPDATA"), "npm"),
			filepath.Join(os.Getenv("USERPROFILE"), "go", "bin"),
		}
	}

	dirs := []string{
		"/usr/local/bin",
		"/usr/bin",
		"/bin",
		"/opt/homebrew/bin",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".local", "bin"),
			filepath.Join(home, ".cargo", "bin"),
			filepath.Join(home, "go", "bin"),
		)
	}
	return dirs
}

// SearchToolInSystemPath searches SystemSearchDirs for a tool.
// Returns the path to the executable if found, empty string otherwise.
func SearchToolInSystemPath(toolName string) string {
	return SearchToolInDirs(toolName, SystemSearchDirs()...)
}

// SearchToolInDirs searches only dirs for a tool.
// Returns the path to the executable if found, empty string otherwise.
func SearchToolInDirs(toolName string, dirs ...string) string {
	if len(dirs) == 0 {
		return ""
	}
	path, err := which.Which(toolName,
		which.WithPath(strings.Join(dirs, string(os.PathListSeparator))),
		which.WithNoThrow(),
	)
	if err != nil {
		return ""
	}
	return path
}

var installSuggestions = map[string]string{
	"node":   "https://nodejs.org/",
	"pnpm":   "https://pnpm.io/installation",
	"npm":    "https://nodejs.org/",
	"yarn":   "https://yarnpkg.com/getting-started/install",
	"python": "https://www.python.org/downloads/",
	"pip":    "https://www.python.org/downloads/",
	"poetry": "https://python-poetry.org/docs/#installation",
	"uv":     "https://docs.astral.sh/uv/getting-started/installation/",
	"docker": "https://www.docker.com/products/docker-desktop",
	"git":    "https://git-scm.com/downloads",
	"go":     "https://go.dev/dl/",
	"dotnet": "https://dotnet.microsoft.com/download",
	"azd":    "https://aka.ms/install-azd",
	"az":     "https://aka.ms/installazurecli",
	"java":   "https://adoptium.net/",
	"mvn":    "https://maven.apache.org/install.html",
	"gradle": "https://gradle.org/install/",
	"gh":     "https://cli.github.com/",
}

// GetInstallSuggestion returns a suggestion for how to install a missing tool.
// Extensions such as ".exe" are ignored when matching the tool name.
func GetInstallSuggestion(toolName string) string {
	name := strings.ToLower(filepath.Base(toolName))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if url, ok := installSuggestions[name]; ok {
		return "Install from " + url
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}
