package hints

import (
	"strings"
	"testing"
)

func TestForClipboardUnavailable(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "xclip"},
		{"darwin", "--file"},
		{"windows", "--file"},
		{"plan9", "no clipboard backend"},
	}

	orig := GOOS
	defer func() { GOOS = orig }()

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			GOOS = func() string { return tt.goos }
			got := ForClipboardUnavailable()
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hint %q missing standard prefix", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForClipboardUnavailable() = %q, want mention of %q", got, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Run("suggests user config path when searched", func(t *testing.T) {
		paths := []string{"cleantext.yaml", "/home/u/.config/cleantext/default.yaml"}
		got := ForConfigNotFound(paths)
		if !strings.Contains(got, "/home/u/.config/cleantext/default.yaml") {
			t.Errorf("ForConfigNotFound() = %q, want user config path", got)
		}
	})

	t.Run("falls back to flag suggestion", func(t *testing.T) {
		got := ForConfigNotFound([]string{"cleantext.yaml"})
		if !strings.Contains(got, "--config") {
			t.Errorf("ForConfigNotFound() = %q, want --config suggestion", got)
		}
	})
}

func TestFormatEmpty(t *testing.T) {
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
