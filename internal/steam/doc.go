// Package steam discovers installed Steam games and compatibility-tool
// shortcuts from an on-disk Steam installation.
//
// # Layout
//
// Discovery reads these files below the Steam root:
//
//	steamapps/libraryfolders.vdf          library folders (text VDF)
//	<library>/steamapps/appmanifest_*.acf installed apps (text VDF)
//	config/config.vdf                     CompatToolMapping (text VDF)
//	userdata/<user>/config/shortcuts.vdf  non-Steam shortcuts (binary VDF)
//
// Text VDF is parsed with github.com/andygrunwald/vdf. Keys in all Valve
// files are matched case-insensitively.
//
// # Catalog
//
// Discover turns the installation into a catalog.Catalog: every installed
// app with a name, followed by every shortcut that has a compatibility tool
// assigned. A shortcut's folder is its Wine prefix:
//
//	<steam>/steamapps/compatdata/<appid>/pfx
//
// All file access goes through system.FileSystem so the whole package can
// be exercised against system.MockFS.
package steam
