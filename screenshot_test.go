package scrollreel

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"initial", "initial"},
		{"after theme", "after_theme"},
		{"a/b\\c", "a_b_c"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"frame-01.v2", "frame-01.v2"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.Pix[0:4]; got[0] != 255 || got[1] != 127 || got[3] != 128 {
		t.Errorf("half alpha pixel = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("opaque pixel = %v", got)
	}
}

func TestScreenshotQueues(t *testing.T) {
	cfg := testConfig()
	v, _ := newTestViewer(t, cfg, NewFSSource(testAssets(t, cfg)))
	v.Screenshot("one")
	v.Screenshot("two")
	if len(v.screenshotQueue) != 2 {
		t.Errorf("queue = %q", v.screenshotQueue)
	}
}
