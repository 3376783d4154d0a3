// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Sample Steam files, as written by a real client, are embedded using
// go:embed:
//
//	fixtures/libraryfolders.vdf
//	fixtures/libraryfolders_legacy.vdf
//	fixtures/appmanifest_620.acf
//	fixtures/appmanifest_228980.acf
//	fixtures/config.vdf
//
//	data, err := testutil.LoadFixture("config.vdf")
//
// # Fake Steam Trees
//
// SteamTree writes a whole installation into a system.MockFS:
//
//	fs := testutil.NewSteamTree("/steam").
//	    AddApp("/steam", 620, "Portal 2", "Portal 2").
//	    SetCompatTool(3000000001, "proton_experimental").
//	    AddShortcut("1000", testutil.Shortcut{AppID: 3000000001, AppName: "Battle.net"}).
//	    Build()
//
// ShortcutsVDF encodes shortcuts in Steam's binary KeyValues format.
//
// # Terminal
//
// ScriptedTerminal replays a list of keys into browser.Run and records the
// frames drawn, so whole sessions can run without a tty.
package testutil
