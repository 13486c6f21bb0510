package utils

import (
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		filename string
		want     string
	}{
		{"My Resume Final.pdf", "1700000000000-My-Resume-Final"},
		{"photo.jpg", "1700000000000-photo"},
		{"  spaced   name .png", "1700000000000-spaced-name"},
		{"/tmp/evil/../path.png", "1700000000000-path"},
		{"no-extension", "1700000000000-no-extension"},
	}

	for _, tt := range tests {
		if got := objectKey(tt.filename, now); got != tt.want {
			t.Errorf("objectKey(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestUploadFolder(t *testing.T) {
	if got := uploadFolder(UploadResume); got != "portfolio_resumes" {
		t.Errorf("resume folder = %q", got)
	}
	if got := uploadFolder(UploadCover); got != "portfolio_articles" {
		t.Errorf("cover folder = %q", got)
	}
	if got := uploadFolder(UploadHeroImage); got != "portfolio_hero" {
		t.Errorf("hero folder = %q", got)
	}
}
