package testutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Shortcut describes one entry of a generated shortcuts.vdf.
type Shortcut struct {
	AppID    uint32
	AppName  string
	Exe      string
	StartDir string
	Tags     []string

	// NoAppID leaves the appid field out, as older clients do.
	NoAppID bool
}

// SteamTree builds a fake Steam installation in a MockFS.
type SteamTree struct {
	FS   *system.MockFS
	Root string

	libraries []string
	compat    map[uint32]string
	shortcuts map[string][]Shortcut
}

// NewSteamTree creates an installation rooted at root, which is also the
// first library folder.
func NewSteamTree(root string) *SteamTree {
	fs := system.NewMockFS()
	fs.AddDir(filepath.Join(root, "steamapps"))
	return &SteamTree{
		FS:        fs,
		Root:      root,
		libraries: []string{root},
		compat:    make(map[uint32]string),
		shortcuts: make(map[string][]Shortcut),
	}
}

// AddLibrary adds an extra library folder.
func (s *SteamTree) AddLibrary(path string) *SteamTree {
	s.libraries = append(s.libraries, path)
	s.FS.AddDir(filepath.Join(path, "steamapps"))
	return s
}

// AddApp writes an app manifest into library and creates the install
// directory.
func (s *SteamTree) AddApp(library string, appID uint32, name, installDir string) *SteamTree {
	s.AddManifest(library, appID, AppManifest(appID, name, installDir))
	s.FS.AddDir(filepath.Join(library, "steamapps", "common", installDir))
	return s
}

// AddManifest writes a raw manifest for appID into library.
func (s *SteamTree) AddManifest(library string, appID uint32, content string) *SteamTree {
	path := filepath.Join(library, "steamapps", fmt.Sprintf("appmanifest_%d.acf", appID))
	s.FS.AddFile(path, []byte(content), 0644)
	return s
}

// SetCompatTool assigns a compatibility tool to appID.
func (s *SteamTree) SetCompatTool(appID uint32, tool string) *SteamTree {
	s.compat[appID] = tool
	return s
}

// AddShortcut adds a shortcut for a Steam user.
func (s *SteamTree) AddShortcut(user string, sc Shortcut) *SteamTree {
	s.shortcuts[user] = append(s.shortcuts[user], sc)
	return s
}

// AddPrefix creates the Wine prefix directory of appID.
func (s *SteamTree) AddPrefix(appID uint32) *SteamTree {
	s.FS.AddDir(PrefixPath(s.Root, appID))
	return s
}

// Build writes libraryfolders.vdf, config.vdf and the shortcuts files and
// returns the file system.
func (s *SteamTree) Build() *system.MockFS {
	s.FS.AddFile(filepath.Join(s.Root, "steamapps", "libraryfolders.vdf"),
		[]byte(LibraryFolders(s.libraries...)), 0644)

	if len(s.compat) > 0 {
		s.FS.AddFile(filepath.Join(s.Root, "config", "config.vdf"),
			[]byte(CompatConfig(s.compat)), 0644)
	}

	for user, list := range s.shortcuts {
		path := filepath.Join(s.Root, "userdata", user, "config", "shortcuts.vdf")
		s.FS.AddFile(path, ShortcutsVDF(list...), 0644)
	}

	return s.FS
}

// PrefixPath returns where Steam keeps the Wine prefix of appID.
func PrefixPath(root string, appID uint32) string {
	return filepath.Join(root, "steamapps", "compatdata", strconv.FormatUint(uint64(appID), 10), "pfx")
}

// AppManifest returns the text of an appmanifest_*.acf file. An empty name
// leaves the name field out.
func AppManifest(appID uint32, name, installDir string) string {
	var b strings.Builder
	b.WriteString("\"AppState\"\n{\n")
	fmt.Fprintf(&b, "\t\"appid\"\t\t\"%d\"\n", appID)
	b.WriteString("\t\"universe\"\t\t\"1\"\n")
	if name != "" {
		fmt.Fprintf(&b, "\t\"name\"\t\t%q\n", name)
	}
	b.WriteString("\t\"StateFlags\"\t\t\"4\"\n")
	fmt.Fprintf(&b, "\t\"installdir\"\t\t%q\n", installDir)
	b.WriteString("}\n")
	return b.String()
}

// LibraryFolders returns the text of a libraryfolders.vdf file.
func LibraryFolders(paths ...string) string {
	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, p := range paths {
		fmt.Fprintf(&b, "\t\"%d\"\n\t{\n", i)
		fmt.Fprintf(&b, "\t\t\"path\"\t\t%q\n", p)
		b.WriteString("\t\t\"label\"\t\t\"\"\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// CompatConfig returns the text of a config.vdf file with a
// CompatToolMapping section.
func CompatConfig(tools map[uint32]string) string {
	ids := make([]uint32, 0, len(tools))
	for id := range tools {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	b.WriteString("\"InstallConfigStore\"\n{\n\t\"Software\"\n\t{\n\t\t\"Valve\"\n\t\t{\n\t\t\t\"Steam\"\n\t\t\t{\n")
	b.WriteString("\t\t\t\t\"CompatToolMapping\"\n\t\t\t\t{\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "\t\t\t\t\t\"%d\"\n\t\t\t\t\t{\n", id)
		fmt.Fprintf(&b, "\t\t\t\t\t\t\"name\"\t\t%q\n", tools[id])
		b.WriteString("\t\t\t\t\t\t\"config\"\t\t\"\"\n")
		b.WriteString("\t\t\t\t\t\t\"priority\"\t\t\"250\"\n")
		b.WriteString("\t\t\t\t\t}\n")
	}
	b.WriteString("\t\t\t\t}\n\t\t\t}\n\t\t}\n\t}\n}\n")
	return b.String()
}

// Binary VDF field types written by ShortcutsVDF.
const (
	binMap    = 0x00
	binString = 0x01
	binInt32  = 0x02
	binEnd    = 0x08
)

// ShortcutsVDF encodes shortcuts in the binary format of shortcuts.vdf.
func ShortcutsVDF(list ...Shortcut) []byte {
	var b bytes.Buffer

	key := func(typ byte, name string) {
		b.WriteByte(typ)
		b.WriteString(name)
		b.WriteByte(0)
	}
	str := func(name, value string) {
		key(binString, name)
		b.WriteString(value)
		b.WriteByte(0)
	}
	u32 := func(name string, value uint32) {
		key(binInt32, name)
		_ = binary.Write(&b, binary.LittleEndian, value)
	}

	key(binMap, "shortcuts")
	for i, sc := range list {
		key(binMap, strconv.Itoa(i))
		if !sc.NoAppID {
			u32("appid", sc.AppID)
		}
		str("AppName", sc.AppName)
		str("Exe", sc.Exe)
		str("StartDir", sc.StartDir)
		str("icon", "")
		str("LaunchOptions", "")
		u32("IsHidden", 0)
		u32("LastPlayTime", 1729170000)
		key(binMap, "tags")
		for j, tag := range sc.Tags {
			str(strconv.Itoa(j), tag)
		}
		b.WriteByte(binEnd)
		b.WriteByte(binEnd)
	}
	b.WriteByte(binEnd)
	b.WriteByte(binEnd)

	return b.Bytes()
}
