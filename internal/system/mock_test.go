package system

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMockFS_ReadFile(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/steam/config/config.vdf", []byte("hello world"), 0644)

	data, err := mockFS.ReadFile("/steam/config/config.vdf")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != "hello world" {
		t.Errorf("ReadFile = %q, want %q", string(data), "hello world")
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Exists(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/games/common/Portal")

	if !mockFS.Exists("/file.txt") {
		t.Error("File should exist")
	}
	if !mockFS.Exists("/games/common/Portal") {
		t.Error("Dir should exist")
	}
	if !mockFS.Exists("/games/common") {
		t.Error("Parent of added dir should exist")
	}
	if mockFS.Exists("/nonexistent") {
		t.Error("Nonexistent should not exist")
	}
}

func TestMockFS_IsDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if mockFS.IsDir("/file.txt") {
		t.Error("File should not be a directory")
	}
	if !mockFS.IsDir("/dir") {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_ReadDirSorted(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/steamapps/appmanifest_70.acf", []byte("x"), 0644)
	mockFS.AddFile("/steamapps/appmanifest_10.acf", []byte("y"), 0644)
	mockFS.AddDir("/steamapps/common")

	entries, err := mockFS.ReadDir("/steamapps")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}

	want := []string{"appmanifest_10.acf", "appmanifest_70.acf", "common"}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.Name(), want[i])
		}
	}
	if !entries[2].IsDir() {
		t.Error("common should be reported as a directory")
	}
}

func TestMockFS_ReadDirMissing(t *testing.T) {
	mockFS := NewMockFS()

	if _, err := mockFS.ReadDir("/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.ReadFileErr = fs.ErrPermission

	_, err := mockFS.ReadFile("/anything")
	if err != fs.ErrPermission {
		t.Errorf("ReadFile error = %v, want ErrPermission", err)
	}
}

func TestMockExecutor_Start(t *testing.T) {
	exec := NewMockExecutor()

	if err := exec.Start("xdg-open", "/games/Portal"); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "xdg-open" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "xdg-open")
	}
	if len(cmd.Args) != 1 || cmd.Args[0] != "/games/Portal" {
		t.Errorf("Command args = %v, want [/games/Portal]", cmd.Args)
	}
}

func TestMockExecutor_StartErr(t *testing.T) {
	exec := NewMockExecutor()
	exec.StartErr = errors.New("no such file")

	if err := exec.Start("missing-opener"); err == nil {
		t.Error("Start should return injected error")
	}
	if len(exec.Commands) != 1 {
		t.Errorf("Failed start should still be recorded, got %d commands", len(exec.Commands))
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	exec := NewMockExecutor()
	exec.Paths["xdg-open"] = "/usr/bin/xdg-open"

	if p, err := exec.LookPath("xdg-open"); err != nil || p != "/usr/bin/xdg-open" {
		t.Errorf("LookPath(xdg-open) = %q, %v", p, err)
	}
	if _, err := exec.LookPath("nautilus"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookPath(nautilus) error = %v, want ErrNotFound", err)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	_ = exec.Start("cmd1")
	_ = exec.Start("cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}

func TestDefaults(t *testing.T) {
	mock := NewMockFS()
	SetDefaultFS(mock)
	if DefaultFS() != mock {
		t.Error("DefaultFS should return the injected FileSystem")
	}

	exec := NewMockExecutor()
	SetDefaultExecutor(exec)
	if DefaultExecutor() != exec {
		t.Error("DefaultExecutor should return the injected executor")
	}

	ResetDefaults()
	if DefaultFS() == mock {
		t.Error("ResetDefaults should restore the OS FileSystem")
	}
}
