package atom

import "testing"

func TestComposeStylePrompt(t *testing.T) {
	if got := ComposeStylePrompt(" a cat ", "lego style"); got != "a cat, lego style" {
		t.Errorf("got %q", got)
	}
	if got := ComposeStylePrompt("a cat", "  "); got != "a cat" {
		t.Errorf("got %q", got)
	}
}

func TestFormatZoomPercent(t *testing.T) {
	tests := map[float64]string{1: "100%", 1.2: "120%", 0.1: "10%", 0.8333: "83%", 5: "500%"}
	for in, want := range tests {
		if got := FormatZoomPercent(in); got != want {
			t.Errorf("FormatZoomPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskKeyShort(t *testing.T) {
	if got := MaskKey("abcdefgh"); got != "****efgh" {
		t.Errorf("got %q", got)
	}
	if got := MaskKey("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestIDSetTrim(t *testing.T) {
	set := IDSet([]string{"a", " b ", "", "a"})
	if len(set) != 2 {
		t.Fatalf("got %v", set)
	}
	if _, ok := set["b"]; !ok {
		t.Errorf("trimmed id missing")
	}
}
