package steam

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Libraries returns the library folders of the installation rooted at
// root, in libraryfolders.vdf order. Steam lists its own folder there as
// library "0", possibly under a different spelling of the path than root.
// Without the file, or with an empty list, root is the only library; the
// older format, which lists only the extra libraries, gets root prepended.
func Libraries(fsys system.FileSystem, root string) ([]string, error) {
	fallback := []string{filepath.Clean(root)}

	path := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("no libraryfolders.vdf", "path", path)
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := parseText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	folders, ok := doc.child("libraryfolders")
	if !ok {
		return nil, fmt.Errorf("failed to parse %s: no libraryfolders section", path)
	}

	var libs []string
	legacy := false
	for _, key := range folders.indexedKeys() {
		var lib string
		if entry, ok := folders.child(key); ok {
			lib = entry.str("path")
		} else {
			// Older clients store extra libraries as plain paths and
			// leave the Steam folder itself out.
			lib = folders.str(key)
			legacy = true
		}
		if lib == "" {
			continue
		}
		libs = append(libs, filepath.Clean(lib))
	}

	if legacy || len(libs) == 0 {
		libs = append(fallback, libs...)
	}
	return dedupe(libs), nil
}
