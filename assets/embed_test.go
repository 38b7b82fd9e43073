package assets

import (
	"errors"
	"testing"
)

func TestDecodeImage(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		rows    int
	}{
		{Player, 6, 1},
		{Obstacle, 8, 8},
		{Far, 1, 1},
		{Mid, 1, 1},
		{Near, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := DecodeImage(tc.name)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			size := img.Bounds().Size()
			if size.X == 0 || size.Y == 0 {
				t.Fatalf("expected non-empty image")
			}
			if size.X%tc.columns != 0 || size.Y%tc.rows != 0 {
				t.Fatalf("sheet %v does not split into %dx%d cells", size, tc.columns, tc.rows)
			}
		})
	}
}

func TestLoadFileUnknown(t *testing.T) {
	if _, err := LoadFile("missing.png"); !errors.Is(err, ErrUnknownAsset) {
		t.Fatalf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"scarfy.png", "scarfy.png"},
		{"assets/scarfy.png", "scarfy.png"},
		{"/home/me/dasher/assets/nebula.png", "nebula.png"},
	}
	for _, tc := range tests {
		if got := cleanAssetPath(tc.in); got != tc.want {
			t.Fatalf("cleanAssetPath(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNamesCoverEverySheet(t *testing.T) {
	if len(Names) != 5 {
		t.Fatalf("expected five textures, got %d", len(Names))
	}
	for _, name := range Names {
		if _, err := LoadFile(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}
