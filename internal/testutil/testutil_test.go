package testutil

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/steamdirs/internal/browser"
)

func TestLoadFixture(t *testing.T) {
	for _, name := range []string{
		"libraryfolders.vdf",
		"libraryfolders_legacy.vdf",
		"appmanifest_620.acf",
		"appmanifest_228980.acf",
		"config.vdf",
	} {
		data, err := LoadFixture(name)
		if err != nil {
			t.Errorf("LoadFixture(%q) error: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("LoadFixture(%q) is empty", name)
		}
	}

	if _, err := LoadFixture("missing.vdf"); err == nil {
		t.Error("LoadFixture() should fail for a missing fixture")
	}
}

func TestSteamTree_Build(t *testing.T) {
	fs := NewSteamTree("/steam").
		AddLibrary("/mnt/lib").
		AddApp("/mnt/lib", 620, "Portal 2", "Portal 2").
		SetCompatTool(3000000001, "proton_experimental").
		AddShortcut("1000", Shortcut{AppID: 3000000001, AppName: "Battle.net"}).
		AddPrefix(3000000001).
		Build()

	for _, path := range []string{
		"/steam/steamapps/libraryfolders.vdf",
		"/mnt/lib/steamapps/appmanifest_620.acf",
		"/steam/config/config.vdf",
		"/steam/userdata/1000/config/shortcuts.vdf",
	} {
		if !fs.Exists(path) {
			t.Errorf("%s should exist", path)
		}
	}
	if !fs.IsDir("/mnt/lib/steamapps/common/Portal 2") {
		t.Error("install dir should exist")
	}
	if !fs.IsDir(filepath.Join("/steam", "steamapps", "compatdata", "3000000001", "pfx")) {
		t.Error("prefix should exist")
	}
}

func TestShortcutsVDF(t *testing.T) {
	data := ShortcutsVDF(Shortcut{AppID: 1, AppName: "A"})

	if !bytes.HasPrefix(data, []byte("\x00shortcuts\x00\x000\x00\x02appid\x00\x01\x00\x00\x00")) {
		t.Errorf("unexpected header: %q", data[:32])
	}
	if !bytes.HasSuffix(data, []byte{0x08, 0x08, 0x08, 0x08}) {
		t.Errorf("unexpected trailer: %q", data[len(data)-4:])
	}

	noID := ShortcutsVDF(Shortcut{AppName: "A", NoAppID: true})
	if bytes.Contains(noID, []byte("appid")) {
		t.Error("NoAppID should leave the appid field out")
	}
}

func TestScriptedTerminal(t *testing.T) {
	term := &ScriptedTerminal{Keys: []browser.Key{{Code: browser.KeyDown}}}

	k, ok, err := term.Poll(0)
	if err != nil || !ok || k.Code != browser.KeyDown {
		t.Errorf("Poll() = %v, %v, %v, want KeyDown", k, ok, err)
	}

	if _, _, err := term.Poll(0); !errors.Is(err, ErrScriptExhausted) {
		t.Errorf("Poll() after the script error = %v, want ErrScriptExhausted", err)
	}

	if err := term.Render(browser.Frame{Status: "x"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if term.LastFrame().Status != "x" {
		t.Error("LastFrame() should return the rendered frame")
	}
}
