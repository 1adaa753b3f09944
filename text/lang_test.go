package text

import (
	"testing"

	"github.com/quirelab/quire/geom"
)

func TestNew_ResolvesBox(t *testing.T) {
	l := New(3, "hello", geom.Geometry{Box: &geom.Box{X0: 0, Y0: 0, X1: 50, Y1: 20}})

	if l.Box == nil {
		t.Fatal("expected resolved box")
	}
	if l.Index != 3 || l.Text != "hello" {
		t.Errorf("unexpected record: %+v", l)
	}
}

func TestNew_DegenerateGeometryYieldsNilBox(t *testing.T) {
	l := New(0, "x", geom.Geometry{Box: &geom.Box{X0: 50, Y0: 0, X1: 50, Y1: 20}})

	if l.Box != nil {
		t.Errorf("expected nil box, got %+v", *l.Box)
	}
}

func TestReindex(t *testing.T) {
	lines := []Line{{Index: 7, Text: "a"}, {Index: 2, Text: "b"}}

	out := Reindex(lines)

	for i, l := range out {
		if l.Index != i {
			t.Errorf("line %d has index %d", i, l.Index)
		}
	}
	if lines[0].Index != 7 {
		t.Error("input must not be mutated")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		lang string
		want string
	}{
		{"auto passes through", "Größe œuvre", "auto", "Größe œuvre"},
		{"unknown code passes through", "Größe", "xx", "Größe"},
		{"german keeps umlauts", "Größe 12", "de", "Größe 12"},
		{"english drops umlauts", "Größe", "en", "Gre"},
		{"french keeps ligature", "œuvre", "fr", "œuvre"},
		{"whitespace preserved", "a\tb c", "en", "a\tb c"},
		{"digits and punctuation pass", "Preis: 12,50 €", "en", "Preis: 12,50 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLanguage(tt.in, tt.lang); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeLanguage_NFC(t *testing.T) {
	// Decomposed o + combining diaeresis must survive German filtering
	// as the precomposed character.
	in := "Größe"

	if got := NormalizeLanguage(in, "de"); got != "Größe" {
		t.Errorf("got %q", got)
	}
}

func TestDetectLanguages(t *testing.T) {
	langs := DetectLanguages([]rune("abcäöü"))

	if langs[0] != LangAuto {
		t.Fatalf("auto must come first, got %v", langs)
	}

	want := map[string]bool{"de": true, "en": true, "fr": true, "la": true}
	for _, l := range langs[1:] {
		if !want[l] {
			t.Errorf("unexpected language %q", l)
		}
	}
	if len(langs) != 5 {
		t.Errorf("expected all languages for latin alphabet, got %v", langs)
	}
}

func TestDetectLanguages_Empty(t *testing.T) {
	langs := DetectLanguages(nil)

	if len(langs) != 1 || langs[0] != LangAuto {
		t.Errorf("expected [auto], got %v", langs)
	}
}
