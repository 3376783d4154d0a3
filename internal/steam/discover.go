package steam

import (
	"path/filepath"
	"strconv"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/steamdirs/internal/catalog"
	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Options selects what Discover includes.
type Options struct {
	// Installed includes Steam apps from every library folder.
	Installed bool

	// Shortcuts includes non-Steam shortcuts with a compatibility tool.
	Shortcuts bool
}

// DefaultOptions includes both installed apps and shortcuts.
func DefaultOptions() Options {
	return Options{Installed: true, Shortcuts: true}
}

// Discover builds the catalog for the Steam installation at root.
//
// Installed apps without a name are left out. If the library list cannot
// be read, installed apps are skipped with a warning; every other read or
// parse failure is returned as a discovery error.
func Discover(fsys system.FileSystem, root string, opts Options) (*catalog.Catalog, error) {
	var direct, proxied []catalog.Item

	if opts.Installed {
		items, err := installedItems(fsys, root)
		if err != nil {
			return nil, err
		}
		direct = items
	}

	if opts.Shortcuts {
		items, err := shortcutItems(fsys, root)
		if err != nil {
			return nil, err
		}
		proxied = items
	}

	logging.Debug("discovery finished", "root", root, "installed", len(direct), "shortcuts", len(proxied))
	return catalog.New(direct, proxied), nil
}

func installedItems(fsys system.FileSystem, root string) ([]catalog.Item, error) {
	libs, err := Libraries(fsys, root)
	if err != nil {
		logging.Warn("skipping installed games", "error", err)
		return nil, nil
	}

	var items []catalog.Item
	for _, lib := range libs {
		apps, err := Apps(fsys, lib)
		if err != nil {
			return nil, errors.DiscoveryError("failed to read installed apps", err)
		}
		for _, a := range apps {
			if a.Name == "" {
				logging.Debug("skipping unnamed app", "appid", a.AppID)
				continue
			}
			items = append(items, catalog.Item{
				Name:  a.Name,
				AppID: a.AppID,
				Path:  a.Path,
			})
		}
	}
	return items, nil
}

func shortcutItems(fsys system.FileSystem, root string) ([]catalog.Item, error) {
	tools, err := CompatToolMapping(fsys, root)
	if err != nil {
		return nil, errors.DiscoveryError("failed to read compatibility tool mapping", err)
	}

	shortcuts, err := Shortcuts(fsys, root)
	if err != nil {
		return nil, errors.DiscoveryError("failed to read shortcuts", err)
	}

	var items []catalog.Item
	for _, s := range shortcuts {
		if _, ok := tools[s.AppID]; !ok {
			continue
		}
		pfx, err := PrefixPath(root, s.AppID)
		if err != nil {
			return nil, errors.DiscoveryError("failed to resolve prefix path", err)
		}
		items = append(items, catalog.Item{
			Name:    s.AppName,
			AppID:   s.AppID,
			Proxied: true,
			Path:    pfx,
		})
	}
	return items, nil
}

// PrefixPath returns the Wine prefix of an app run through a compatibility
// tool: <root>/steamapps/compatdata/<appid>/pfx.
func PrefixPath(root string, appID uint32) (string, error) {
	rel := filepath.Join("steamapps", "compatdata", strconv.FormatUint(uint64(appID), 10), "pfx")
	return securejoin.SecureJoin(root, rel)
}
