package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/quotecraft/pkg/background"
)

func TestDescribeBackground(t *testing.T) {
	tests := []struct {
		cfg  background.Config
		want string
	}{
		{background.Config{Kind: background.KindSolid, Color: "#1b2a49"}, "#1b2a49"},
		{background.Config{Kind: background.KindGradient, From: "#000000", To: "#ffffff"}, "#000000 → #ffffff"},
		{background.Config{Kind: background.KindPattern, Motif: background.MotifDots, Color: "cream"}, "dots on cream"},
		{background.Config{Kind: background.KindPattern, Path: "tiles/leaf.png"}, "tile leaf.png"},
		{background.Config{Kind: background.KindPhoto, Path: "Backgrounds/beach.jpg", Blur: 2}, "beach.jpg, blur 2.0"},
	}
	for _, tt := range tests {
		if got := describeBackground(tt.cfg); got != tt.want {
			t.Errorf("describeBackground(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestBackgroundTable(t *testing.T) {
	out := backgroundTable(background.NewCatalog(nil, nil).Presets(background.CategoryGradient))
	for _, want := range []string{"Category", "sunset", "ocean"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestBackgroundsCommandUnknownCategory(t *testing.T) {
	if _, err := execute(t, "", "backgrounds", "no-such-category"); err == nil {
		t.Error("expected an error for an empty category")
	}
}
