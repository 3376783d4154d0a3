package steam

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io/fs"
	"path/filepath"

	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Shortcut is a non-Steam game added to a user's library.
type Shortcut struct {
	AppID    uint32
	AppName  string
	Exe      string
	StartDir string
}

// Shortcuts returns the shortcuts of every local Steam user, users in
// directory order and shortcuts in file order.
func Shortcuts(fsys system.FileSystem, root string) ([]Shortcut, error) {
	userdata := filepath.Join(root, "userdata")
	users, err := fsys.ReadDir(userdata)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("no userdata directory", "path", userdata)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", userdata, err)
	}

	var all []Shortcut
	for _, u := range users {
		if !u.IsDir() {
			continue
		}
		path := filepath.Join(userdata, u.Name(), "config", "shortcuts.vdf")
		data, err := fsys.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		list, err := parseShortcuts(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		logging.Debug("read shortcuts", "user", u.Name(), "count", len(list))
		all = append(all, list...)
	}

	return all, nil
}

func parseShortcuts(data []byte) ([]Shortcut, error) {
	doc, err := parseBinary(data)
	if err != nil {
		return nil, err
	}

	section, ok := doc.child("shortcuts")
	if !ok {
		return nil, nil
	}

	var out []Shortcut
	for _, key := range section.indexedKeys() {
		entry, ok := section.child(key)
		if !ok {
			continue
		}

		s := Shortcut{
			AppName:  entry.str("AppName"),
			Exe:      entry.str("Exe"),
			StartDir: entry.str("StartDir"),
		}
		if id, err := entry.appID("appid"); err == nil {
			s.AppID = id
		} else {
			s.AppID = ShortcutAppID(s.Exe, s.AppName)
		}
		out = append(out, s)
	}
	return out, nil
}

// ShortcutAppID derives the app id Steam assigns to a shortcut from its
// executable and name. Shortcut files written by older clients carry no
// appid field.
func ShortcutAppID(exe, name string) uint32 {
	return crc32.ChecksumIEEE([]byte(exe+name)) | 0x80000000
}
