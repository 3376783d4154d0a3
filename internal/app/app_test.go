package app

import (
	"bytes"
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/firefly-engineering/steamdirs/internal/browser"
	"github.com/firefly-engineering/steamdirs/internal/catalog"
	"github.com/firefly-engineering/steamdirs/internal/config"
	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
	"github.com/firefly-engineering/steamdirs/internal/testutil"
)

func testApp(t *testing.T, tree *testutil.SteamTree) (*App, *system.MockExecutor, *testutil.ScriptedTerminal) {
	t.Helper()

	cfg := config.Default()
	cfg.SteamDir = tree.Root
	exec := system.NewMockExecutor()
	term := &testutil.ScriptedTerminal{}

	a := New(
		WithConfig(cfg),
		WithFS(tree.Build()),
		WithExecutor(exec),
		WithTerminal(term.Open),
	)
	return a, exec, term
}

// browse prepares and runs the browser the way the root command does.
func browse(a *App, cat *catalog.Catalog) error {
	st, err := a.NewBrowser(cat)
	if err != nil {
		return err
	}
	return a.Run(st)
}

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.Config == nil {
		t.Error("Config should not be nil")
	}
	if app.FS == nil || app.Executor == nil {
		t.Error("FS and Executor should default to the OS implementations")
	}
	if app.Terminal != nil {
		t.Error("Terminal should default to nil (real terminal)")
	}
}

func TestNew_WithOptions(t *testing.T) {
	cfg := config.Default()
	fs := system.NewMockFS()
	exec := system.NewMockExecutor()
	term := &testutil.ScriptedTerminal{}

	app := New(WithConfig(cfg), WithFS(fs), WithExecutor(exec), WithTerminal(term.Open))

	if app.Config != cfg {
		t.Error("WithConfig did not set config")
	}
	if app.FS != fs {
		t.Error("WithFS did not set file system")
	}
	if app.Executor != exec {
		t.Error("WithExecutor did not set executor")
	}
	if app.Terminal == nil {
		t.Error("WithTerminal did not set terminal")
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer SetDefault(original)

	custom := New(WithConfig(config.Default()))
	SetDefault(custom)

	if Default != custom {
		t.Error("SetDefault did not set default app")
	}

	ResetDefault()
	if Default == custom {
		t.Error("ResetDefault did not replace the default app")
	}
}

func TestCatalog(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").
		AddApp("/steam", 620, "Portal 2", "Portal 2").
		SetCompatTool(3000000001, "proton_experimental").
		AddShortcut("1000", testutil.Shortcut{AppID: 3000000001, AppName: "Battle.net"})
	a, _, _ := testApp(t, tree)

	cat, err := a.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Catalog().Len() = %d, want 2", cat.Len())
	}
}

func TestCatalog_RespectsConfig(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").
		AddApp("/steam", 620, "Portal 2", "Portal 2").
		SetCompatTool(3000000001, "proton_experimental").
		AddShortcut("1000", testutil.Shortcut{AppID: 3000000001, AppName: "Battle.net"})
	a, _, _ := testApp(t, tree)
	a.Config.IncludeInstalled = false

	cat, err := a.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if cat.Len() != 1 || !cat.At(0).Proxied {
		t.Errorf("Catalog() = %+v, want only the shortcut", cat.Items())
	}
}

func TestCatalog_SteamMissing(t *testing.T) {
	a, _, _ := testApp(t, testutil.NewSteamTree("/steam"))
	a.Config.SteamDir = "/elsewhere"

	_, err := a.Catalog()
	if got := errors.GetExitCode(err); got != errors.ExitDiscovery {
		t.Errorf("exit code = %d, want %d (err: %v)", got, errors.ExitDiscovery, err)
	}
}

func TestBrowse_OpensSelectedFolder(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").
		AddApp("/steam", 400, "Portal", "Portal").
		AddApp("/steam", 620, "Portal 2", "Portal 2")
	a, exec, term := testApp(t, tree)
	a.Config.Opener = "thunar"
	term.Keys = []browser.Key{
		{Code: browser.KeyDown},
		{Code: browser.KeyEnter},
		browser.RuneKey('q'),
	}

	cat, err := a.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if err := browse(a, cat); err != nil {
		t.Fatalf("browse() error: %v", err)
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("no folder opener was started")
	}
	if cmd.Name != "thunar" || len(cmd.Args) != 1 || cmd.Args[0] != "/steam/steamapps/common/Portal 2" {
		t.Errorf("started %s %v, want thunar /steam/steamapps/common/Portal 2", cmd.Name, cmd.Args)
	}
	if term.Opened != 1 || term.Closed != 1 {
		t.Errorf("terminal opened %d and closed %d times, want 1 and 1", term.Opened, term.Closed)
	}
	if got := term.LastFrame().Status; got != "Opened game folder." {
		t.Errorf("status = %q, want %q", got, "Opened game folder.")
	}
}

func TestBrowse_SearchDisabled(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").AddApp("/steam", 400, "Portal", "Portal")
	a, _, term := testApp(t, tree)
	a.Config.Search = false
	term.Keys = []browser.Key{browser.RuneKey('/'), browser.RuneKey('q')}

	cat, _ := a.Catalog()
	if err := browse(a, cat); err != nil {
		t.Fatalf("browse() error: %v", err)
	}
	if term.LastFrame().Searching {
		t.Error("'/' should be ignored with search disabled")
	}
}

func TestBrowse_InvalidOpener(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").AddApp("/steam", 400, "Portal", "Portal")
	a, _, term := testApp(t, tree)
	a.Config.Opener = `"unterminated`

	cat, _ := a.Catalog()
	err := browse(a, cat)
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d (err: %v)", got, errors.ExitConfigError, err)
	}
	if term.Opened != 0 {
		t.Error("terminal should not be opened with a broken opener")
	}
}

func TestBrowse_TerminalUnavailable(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").AddApp("/steam", 400, "Portal", "Portal")
	a, _, _ := testApp(t, tree)
	a.Terminal = func() (browser.Terminal, error) {
		return nil, stderrors.New("not a terminal")
	}

	cat, _ := a.Catalog()
	err := browse(a, cat)
	if got := errors.GetExitCode(err); got != errors.ExitTerminal {
		t.Errorf("exit code = %d, want %d (err: %v)", got, errors.ExitTerminal, err)
	}
}

func TestNewBrowser_WarnsBeforeRun(t *testing.T) {
	tree := testutil.NewSteamTree("/steam").AddApp("/steam", 400, "Portal", "Portal")
	a, _, term := testApp(t, tree)
	a.Config.Opener = "no-such-file-manager"

	var buf bytes.Buffer
	logging.Setup(false, false, &buf)
	defer logging.Setup(false, false, os.Stderr)

	cat, _ := a.Catalog()
	if _, err := a.NewBrowser(cat); err != nil {
		t.Fatalf("NewBrowser() error: %v", err)
	}

	if !strings.Contains(buf.String(), "folder opener not found") {
		t.Errorf("log = %q, want the missing opener warning", buf.String())
	}
	if term.Opened != 0 {
		t.Error("NewBrowser should not open the terminal")
	}
}
