package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/portfolio/pkg/embedded"
)

func TestParsePortfolioConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *PortfolioConfig)
	}{
		{
			name:        "defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *PortfolioConfig) {
				if cfg.Author != (AuthorConfig{Title: "Portfolio"}) {
					t.Errorf("expected default author {title: Portfolio}, got %+v", cfg.Author)
				}
				if len(cfg.Gallery) != 3 {
					t.Fatalf("expected 3 gallery cards, got %d", len(cfg.Gallery))
				}
				if cfg.Gallery[0].Title != "Moon" || cfg.Gallery[0].Description != "Shot from Xiaomi Redmi K30 Pro" {
					t.Errorf("unexpected first card: %+v", cfg.Gallery[0])
				}
				if cfg.Gallery[2].Title != "Centaurus A Galaxy" {
					t.Errorf("unexpected third card: %+v", cfg.Gallery[2])
				}
			},
		},
		{
			name: "custom author and gallery",
			yamlContent: `
author:
  name: Jane Doe
  age: "28"
  title: Jane's Sky
gallery:
  - title: Orion Nebula
    description: Stacked 40 frames
    badges:
      - label: deep-sky
        variant: accent
`,
			validate: func(t *testing.T, cfg *PortfolioConfig) {
				want := AuthorConfig{Name: "Jane Doe", Age: "28", Title: "Jane's Sky"}
				if cfg.Author != want {
					t.Errorf("expected author %+v, got %+v", want, cfg.Author)
				}
				if len(cfg.Gallery) != 1 {
					t.Fatalf("expected gallery to be replaced, got %d cards", len(cfg.Gallery))
				}
				badges := cfg.BadgesFor(cfg.Gallery[0])
				if len(badges) != 1 || badges[0].Label != "deep-sky" {
					t.Errorf("expected card badges, got %+v", badges)
				}
			},
		},
		{
			name:        "scalar author is the title",
			yamlContent: "author: Jane Doe\n",
			validate: func(t *testing.T, cfg *PortfolioConfig) {
				if cfg.Author != (AuthorConfig{Title: "Jane Doe"}) {
					t.Errorf("expected scalar author as title, got %+v", cfg.Author)
				}
			},
		},
		{
			name:        "author name keeps default title",
			yamlContent: "author:\n  name: Ada\n",
			validate: func(t *testing.T, cfg *PortfolioConfig) {
				if cfg.Author.Name != "Ada" || cfg.Author.Title != "Portfolio" {
					t.Errorf("expected name Ada over default title, got %+v", cfg.Author)
				}
			},
		},
		{
			name:        "unknown anchor",
			yamlContent: "nav:\n  - label: About\n    anchor: about\n",
			wantErr:     true,
			errContains: "unknown anchor",
		},
		{
			name:        "missing nav label",
			yamlContent: "nav:\n  - anchor: top\n",
			wantErr:     true,
			errContains: "label is required",
		},
		{
			name:        "missing card title",
			yamlContent: "gallery:\n  - description: untitled\n",
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "unknown badge variant",
			yamlContent: "defaultBadges:\n  - label: x\n    variant: neon\n",
			wantErr:     true,
			errContains: "unknown variant",
		},
		{
			name:        "bad theme colour",
			yamlContent: "theme:\n  accent: purple\n",
			wantErr:     true,
			errContains: "accent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParsePortfolioConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestBadgesFor_DefaultBadges(t *testing.T) {
	cfg := DefaultPortfolioConfig()
	badges := cfg.BadgesFor(cfg.Gallery[0])

	want := []BadgeConfig{
		{Label: "celestron", Variant: BadgeAccent},
		{Label: "sv305", Variant: BadgeSuccess},
		{Label: "planetary", Variant: BadgeSecondary},
	}
	if len(badges) != len(want) {
		t.Fatalf("expected %d badges, got %d", len(want), len(badges))
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Errorf("badge %d = %+v, want %+v", i, badges[i], want[i])
		}
	}
}

func TestPalette_BadgeColor(t *testing.T) {
	p, err := DefaultPortfolioConfig().Theme.Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}

	tests := []struct {
		variant string
		want    color.RGBA
	}{
		{BadgeAccent, p.Accent},
		{BadgeSuccess, p.Success},
		{BadgeSecondary, p.Secondary},
		{BadgeDefault, p.Muted},
		{"", p.Muted},
	}
	for _, tt := range tests {
		if got := p.BadgeColor(tt.variant); got != tt.want {
			t.Errorf("BadgeColor(%q) = %v, want %v", tt.variant, got, tt.want)
		}
	}
}

// TestLoadPortfolioConfig_DataFile 验证仓库自带的 data/portfolio.yaml 可以加载
func TestLoadPortfolioConfig_DataFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", PortfolioConfigPath))
	if err != nil {
		t.Skipf("无法读取配置文件: %v", err)
	}
	embedded.Init(fstest.MapFS{PortfolioConfigPath: {Data: data}})

	cfg, err := LoadPortfolioConfig(PortfolioConfigPath)
	if err != nil {
		t.Fatalf("LoadPortfolioConfig() error = %v", err)
	}
	if cfg.Author.Title != DefaultAuthor {
		t.Errorf("author title = %q, want %q", cfg.Author.Title, DefaultAuthor)
	}

	wantTitles := []string{"Moon", "Sun", "Centaurus A Galaxy"}
	wantDescs := []string{"Shot from Xiaomi Redmi K30 Pro", "Shot from SV305 Camera", "Shot from SV305 Camera"}
	if len(cfg.Gallery) != len(wantTitles) {
		t.Fatalf("expected %d cards, got %d", len(wantTitles), len(cfg.Gallery))
	}
	for i, card := range cfg.Gallery {
		if card.Title != wantTitles[i] || card.Description != wantDescs[i] {
			t.Errorf("card %d = %q/%q, want %q/%q", i, card.Title, card.Description, wantTitles[i], wantDescs[i])
		}
	}
}
