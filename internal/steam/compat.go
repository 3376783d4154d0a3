package steam

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// CompatTool is the compatibility tool assigned to an app.
type CompatTool struct {
	Name   string
	Config string
}

// CompatToolMapping returns the per-app compatibility tool assignments from
// config/config.vdf. A missing file yields an empty mapping.
func CompatToolMapping(fsys system.FileSystem, root string) (map[uint32]CompatTool, error) {
	mapping := make(map[uint32]CompatTool)

	path := filepath.Join(root, "config", "config.vdf")
	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("no config.vdf", "path", path)
		return mapping, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := parseText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	section, ok := doc.path("InstallConfigStore", "Software", "Valve", "Steam", "CompatToolMapping")
	if !ok {
		return mapping, nil
	}

	for key := range section {
		id, err := parseAppID(key)
		if err != nil {
			logging.Debug("skipping compat tool entry", "key", key)
			continue
		}
		entry, ok := section.child(key)
		if !ok {
			continue
		}
		mapping[id] = CompatTool{
			Name:   entry.str("name"),
			Config: entry.str("config"),
		}
	}

	return mapping, nil
}
