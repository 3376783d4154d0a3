package steam

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Locate returns the Steam root directory. A non-empty override is
// cleaned and must be a directory. Otherwise the platform's usual install
// locations are tried in order; the first one holding a steamapps
// directory wins.
func Locate(fs system.FileSystem, override string) (string, error) {
	if override != "" {
		override = filepath.Clean(override)
		if !fs.IsDir(override) {
			return "", errors.DiscoveryError("steam directory "+override+" does not exist", nil)
		}
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logging.Debug("no home directory", "error", err)
	}

	searched := Candidates(runtime.GOOS, home, os.Getenv)
	for _, dir := range searched {
		if fs.IsDir(filepath.Join(dir, "steamapps")) {
			logging.Debug("found steam installation", "path", dir)
			return dir, nil
		}
		logging.Debug("no steam installation", "path", dir)
	}

	return "", errors.SteamNotFound(searched)
}

// Candidates lists the directories a Steam installation is usually found
// in on goos, most likely first.
func Candidates(goos, home string, getenv func(string) string) []string {
	var dirs []string
	add := func(parts ...string) {
		if parts[0] == "" {
			return
		}
		dirs = append(dirs, filepath.Join(parts...))
	}

	switch goos {
	case "windows":
		add(getenv("ProgramFiles(x86)"), "Steam")
		add(getenv("ProgramFiles"), "Steam")
	case "darwin":
		add(home, "Library", "Application Support", "Steam")
	default:
		add(getenv("XDG_DATA_HOME"), "Steam")
		add(home, ".local", "share", "Steam")
		add(home, ".steam", "steam")
		add(home, ".steam", "root")
		// Flatpak and Snap keep their own home below the user's.
		add(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam")
		add(home, "snap", "steam", "common", ".local", "share", "Steam")
	}

	return dedupe(dirs)
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
