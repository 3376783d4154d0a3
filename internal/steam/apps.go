package steam

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// App is an installed Steam app read from an appmanifest_*.acf file.
type App struct {
	AppID      uint32
	Name       string
	InstallDir string

	// Path is the absolute install directory inside the library.
	Path string
}

// Apps returns the apps installed in a library folder, ordered by
// manifest file name. A library without a steamapps directory has no apps.
func Apps(fsys system.FileSystem, library string) ([]App, error) {
	dir := filepath.Join(library, "steamapps")
	entries, err := fsys.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("library has no steamapps directory", "library", library)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var apps []App
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
			continue
		}

		app, err := readManifest(fsys, library, filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, nil
}

func readManifest(fsys system.FileSystem, library, path string) (App, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return App{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := parseText(data)
	if err != nil {
		return App{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	state, ok := doc.child("AppState")
	if !ok {
		return App{}, fmt.Errorf("failed to parse %s: no AppState section", path)
	}

	id, err := state.appID("appid")
	if err != nil {
		return App{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	app := App{
		AppID:      id,
		Name:       state.str("name"),
		InstallDir: state.str("installdir"),
	}

	common := filepath.Join(library, "steamapps", "common")
	app.Path, err = securejoin.SecureJoin(common, app.InstallDir)
	if err != nil {
		return App{}, fmt.Errorf("failed to resolve install dir of app %d: %w", id, err)
	}

	return app, nil
}
