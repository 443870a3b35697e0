package theme

import (
	"strings"
	"testing"
)

func TestManager_BrandCSS(t *testing.T) {
	m := NewManager(DefaultConfig(), Palette{"primary-black": "#000", "primary-blue": "#00f"})
	css := m.BrandCSS()

	for _, want := range []string{
		".bg-primary-black{background-color:#000}",
		".text-primary-blue{color:#00f}",
		".z-100{z-index:100}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("BrandCSS() missing %q", want)
		}
	}

	if strings.Index(css, "primary-black") > strings.Index(css, "primary-blue") {
		t.Error("palette entries should be sorted")
	}
}

func TestManager_CustomCSSNode(t *testing.T) {
	if NewManager(DefaultConfig(), nil).CustomCSSNode() != nil {
		t.Error("expected nil without custom CSS")
	}

	m := NewManager(Config{CustomCSS: "body{margin:0}"}, nil)
	if m.CustomCSSNode() == nil {
		t.Error("expected style node")
	}
}

func TestManager_BodyClass(t *testing.T) {
	if got := NewManager(Config{Mode: "dark"}, nil).BodyClass(); got != "dark" {
		t.Errorf("BodyClass() = %q, want dark", got)
	}

	if got := NewManager(Config{Mode: "auto"}, nil).BodyClass(); got != "" {
		t.Errorf("BodyClass() = %q, want empty", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	for _, name := range []string{"primary-black", "primary-white", "primary-blue", "system-grey4", "system-grey6"} {
		if p[name] == "" {
			t.Errorf("palette missing %s", name)
		}
	}
}
