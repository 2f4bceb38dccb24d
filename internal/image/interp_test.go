package image

import (
	"testing"
)

// TestSampleBilinear tests bilinear interpolation.
func TestSampleBilinear(t *testing.T) {
	// Create a 2x2 test image
	img, err := NewImageBuf(2, 2, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewImageBuf failed: %v", err)
	}

	// Fill corners with known values
	_ = img.SetRGBA(0, 0, 0, 0, 0, 255)     // Black
	_ = img.SetRGBA(1, 0, 255, 0, 0, 255)   // Red
	_ = img.SetRGBA(0, 1, 0, 255, 0, 255)   // Green
	_ = img.SetRGBA(1, 1, 255, 255, 0, 255) // Yellow

	tests := []struct {
		name      string
		u, v      float64
		checkFunc func(r, g, b, a byte) bool
		desc      string
	}{
		{
			name: "exact top-left corner",
			u:    0.0, v: 0.0,
			checkFunc: func(r, g, b, a byte) bool {
				return r == 0 && g == 0 && b == 0 && a == 255
			},
			desc: "should be black (0,0,0)",
		},
		{
			name: "exact bottom-right corner",
			u:    1.0, v: 1.0,
			checkFunc: func(r, g, b, a byte) bool {
				return r == 255 && g == 255 && b == 0 && a == 255
			},
			desc: "should be yellow (255,255,0)",
		},
		{
			name: "center between all 4 pixels",
			u:    0.5, v: 0.5,
			checkFunc: func(r, g, b, a byte) bool {
				// Average of (0,0,0), (255,0,0), (0,255,0), (255,255,0)
				// R: (0+255+0+255)/4 = 127.5 ≈ 127 or 128
				// G: (0+0+255+255)/4 = 127.5 ≈ 127 or 128
				// B: 0
				return (r >= 127 && r <= 128) && (g >= 127 && g <= 128) && b == 0 && a == 255
			},
			desc: "should be average of all corners (~127,~127,0)",
		},
		{
			name: "halfway between top corners",
			u:    0.5, v: 0.0,
			checkFunc: func(r, g, b, a byte) bool {
				// Average of (0,0,0) and (255,0,0)
				return (r >= 127 && r <= 128) && g == 0 && b == 0 && a == 255
			},
			desc: "should be between black and red",
		},
		{
			name: "halfway between left corners",
			u:    0.0, v: 0.5,
			checkFunc: func(r, g, b, a byte) bool {
				// Average of (0,0,0) and (0,255,0)
				return r == 0 && (g >= 127 && g <= 128) && b == 0 && a == 255
			},
			desc: "should be between black and green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SampleBilinear(img, tt.u, tt.v)
			if !tt.checkFunc(r, g, b, a) {
				t.Errorf("SampleBilinear(%v, %v) = (%d,%d,%d,%d), %s",
					tt.u, tt.v, r, g, b, a, tt.desc)
			}
		})
	}
}

// TestSampleBilinearSmooth tests that bilinear produces smooth gradients.
func TestSampleBilinearSmooth(t *testing.T) {
	// Create a 2x2 image: black -> white gradient
	img, err := NewImageBuf(2, 2, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewImageBuf failed: %v", err)
	}

	_ = img.SetRGBA(0, 0, 0, 0, 0, 255)
	_ = img.SetRGBA(1, 0, 255, 255, 255, 255)
	_ = img.SetRGBA(0, 1, 0, 0, 0, 255)
	_ = img.SetRGBA(1, 1, 255, 255, 255, 255)

	// Sample along a horizontal line
	prevR := byte(0)
	for i := 0; i <= 10; i++ {
		u := float64(i) / 10.0
		r, _, _, _ := SampleBilinear(img, u, 0.5)

		// Values should be monotonically increasing
		if i > 0 && r < prevR {
			t.Errorf("Non-monotonic gradient at u=%v: r=%d, prevR=%d", u, r, prevR)
		}
		prevR = r
	}
}

// BenchmarkSampleBilinear benchmarks bilinear sampling.
func BenchmarkSampleBilinear(b *testing.B) {
	img, _ := NewImageBuf(256, 256, FormatRGBA8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := float64(i%256) / 256.0
		v := float64((i/256)%256) / 256.0
		SampleBilinear(img, u, v)
	}
}
