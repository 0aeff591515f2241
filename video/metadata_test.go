package video

import (
	"math"
	"testing"
)

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"25/1", 25, false},
		{"30000/1001", 29.97, false},
		{"30", 30, false},
		{"0/0", 0, true},
		{"N/A", 0, true},
		{"", 0, true},
		{"abc/1", 0, true},
	}

	for _, tt := range tests {
		got, err := parseFrameRate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFrameRate(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFrameRate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetVideoDuration_MissingFile(t *testing.T) {
	if _, err := GetVideoDuration("/path/to/nonexistent/video.mp4"); err == nil {
		t.Error("GetVideoDuration() on missing file should return an error")
	}
}

func TestGetFrameRate_MissingFile(t *testing.T) {
	if _, err := GetFrameRate("/path/to/nonexistent/video.mp4"); err == nil {
		t.Error("GetFrameRate() on missing file should return an error")
	}
}

func TestGetFrameCount_MissingFile(t *testing.T) {
	if _, err := GetFrameCount("/path/to/nonexistent/video.mp4"); err == nil {
		t.Error("GetFrameCount() on missing file should return an error")
	}
}

func TestGetVideoResolution_MissingFile(t *testing.T) {
	if _, err := GetVideoResolution("/path/to/nonexistent/video.mp4"); err == nil {
		t.Error("GetVideoResolution() on missing file should return an error")
	}
}
