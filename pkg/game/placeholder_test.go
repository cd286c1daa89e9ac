package game

import "testing"

func TestPlaceholderKindFor(t *testing.T) {
	tests := []struct {
		path string
		want PlaceholderKind
	}{
		{"assets/images/moon.png", PlaceholderMoon},
		{"assets/images/Moon_K30.JPG", PlaceholderMoon},
		{"assets/images/sun.webp", PlaceholderSun},
		{"assets/images/galaxy.png", PlaceholderGalaxy},
		{"assets/images/centaurus-a.png", PlaceholderGalaxy},
		{"assets/images/nebula.png", PlaceholderGeneric},
	}
	for _, tt := range tests {
		if got := PlaceholderKindFor(tt.path); got != tt.want {
			t.Errorf("PlaceholderKindFor(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGeneratePlaceholder(t *testing.T) {
	tests := []struct {
		name          string
		kind          PlaceholderKind
		width, height int
		transparentAt bool // 角落是否透明（圆盘）
	}{
		{"moon", PlaceholderMoon, placeholderDiscSize, placeholderDiscSize, true},
		{"sun", PlaceholderSun, placeholderDiscSize, placeholderDiscSize, true},
		{"galaxy", PlaceholderGalaxy, placeholderGalaxyWidth, placeholderGalaxyHeight, false},
		{"generic", PlaceholderGeneric, placeholderGalaxyWidth, placeholderGalaxyHeight, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := GeneratePlaceholder(tt.kind)
			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}

			corner := img.RGBAAt(0, 0)
			if tt.transparentAt && corner.A != 0 {
				t.Errorf("corner should be transparent, got %v", corner)
			}
			if !tt.transparentAt && corner.A != 255 {
				t.Errorf("corner should be opaque, got %v", corner)
			}

			center := img.RGBAAt(tt.width/2, tt.height/2)
			if center.A != 255 {
				t.Errorf("center should be opaque, got %v", center)
			}
		})
	}
}

func TestGeneratePlaceholder_Deterministic(t *testing.T) {
	a := GeneratePlaceholder(PlaceholderMoon)
	b := GeneratePlaceholder(PlaceholderMoon)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("placeholder differs at byte %d", i)
		}
	}
}

func TestSunPlaceholderIsWarm(t *testing.T) {
	img := GeneratePlaceholder(PlaceholderSun)
	c := img.RGBAAt(placeholderDiscSize/2, placeholderDiscSize/2)
	if c.R <= c.B {
		t.Errorf("sun center should be warm (R > B), got %v", c)
	}
}
