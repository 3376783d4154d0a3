package steam

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/firefly-engineering/steamdirs/internal/system"
	"github.com/firefly-engineering/steamdirs/internal/testutil"
)

func TestLibraries(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		content []byte
		want    []string
	}{
		{
			// The file names the real Steam folder, so the symlinked root is
			// not listed a second time.
			name:    "modern",
			root:    "/home/deck/.steam/steam",
			content: testutil.MustFixture("libraryfolders.vdf"),
			want:    []string{"/home/deck/.local/share/Steam", "/run/media/mmcblk0p1"},
		},
		{
			name:    "legacy",
			root:    "/steam",
			content: testutil.MustFixture("libraryfolders_legacy.vdf"),
			want:    []string{"/steam", "/mnt/games/SteamLibrary", "/mnt/ssd/SteamLibrary"},
		},
		{
			name:    "empty list",
			root:    "/steam",
			content: []byte("\"libraryfolders\"\n{\n}\n"),
			want:    []string{"/steam"},
		},
		{
			name:    "duplicates",
			root:    "/steam",
			content: []byte(testutil.LibraryFolders("/steam", "/mnt/lib/", "/mnt/lib")),
			want:    []string{"/steam", "/mnt/lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := system.NewMockFS()
			fs.AddFile(tt.root+"/steamapps/libraryfolders.vdf", tt.content, 0644)

			libs, err := Libraries(fs, tt.root)
			if err != nil {
				t.Fatalf("Libraries() error: %v", err)
			}
			if !slices.Equal(libs, tt.want) {
				t.Errorf("Libraries() = %q, want %q", libs, tt.want)
			}
		})
	}
}

func TestLibraries_MissingFile(t *testing.T) {
	libs, err := Libraries(system.NewMockFS(), "/steam")
	if err != nil {
		t.Fatalf("Libraries() error: %v", err)
	}
	if want := []string{"/steam"}; !slices.Equal(libs, want) {
		t.Errorf("Libraries() = %q, want %q", libs, want)
	}
}

func TestLibraries_Errors(t *testing.T) {
	t.Run("no section", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.AddFile("/steam/steamapps/libraryfolders.vdf", []byte("\"other\"\n{\n}\n"), 0644)

		_, err := Libraries(fs, "/steam")
		if err == nil || !strings.Contains(err.Error(), "no libraryfolders section") {
			t.Errorf("Libraries() error = %v, want a missing section error", err)
		}
	})

	t.Run("read error", func(t *testing.T) {
		fs := system.NewMockFS()
		fs.ReadFileErr = errors.New("permission denied")

		_, err := Libraries(fs, "/steam")
		if err == nil || !strings.Contains(err.Error(), "permission denied") {
			t.Errorf("Libraries() error = %v, want the read error", err)
		}
	})
}
