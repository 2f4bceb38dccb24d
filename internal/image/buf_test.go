package image

import (
	"errors"
	"testing"
)

func TestImageBuf_Bounds(t *testing.T) {
	buf, _ := NewImageBuf(100, 50, FormatRGBA8)
	w, h := buf.Bounds()
	if w != 100 || h != 50 {
		t.Errorf("Bounds() = (%d, %d), want (100, 50)", w, h)
	}
}

func TestImageBuf_PixelOffset(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatRGBA8)

	tests := []struct {
		x, y   int
		expect int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 40},
		{5, 5, 220}, // 5*40 + 5*4 = 200 + 20 = 220
		{-1, 0, -1},
		{10, 0, -1},
		{0, -1, -1},
		{0, 10, -1},
	}

	for _, tt := range tests {
		offset := buf.PixelOffset(tt.x, tt.y)
		if offset != tt.expect {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.x, tt.y, offset, tt.expect)
		}
	}
}

func TestImageBuf_PixelBytes(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatRGBA8)

	// Set a pixel
	buf.Data()[0] = 255
	buf.Data()[1] = 128
	buf.Data()[2] = 64
	buf.Data()[3] = 32

	pixel := buf.PixelBytes(0, 0)
	if len(pixel) != 4 {
		t.Errorf("PixelBytes length = %d, want 4", len(pixel))
	}
	if pixel[0] != 255 || pixel[1] != 128 || pixel[2] != 64 || pixel[3] != 32 {
		t.Error("PixelBytes returned wrong data")
	}

	// Out of bounds
	if buf.PixelBytes(-1, 0) != nil {
		t.Error("PixelBytes(-1, 0) should return nil")
	}
}

func TestImageBuf_GetSetRGBA_RGBA8(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatRGBA8)

	// Set and get
	err := buf.SetRGBA(5, 5, 200, 150, 100, 50)
	if err != nil {
		t.Fatalf("SetRGBA failed: %v", err)
	}

	r, g, b, a := buf.GetRGBA(5, 5)
	if r != 200 || g != 150 || b != 100 || a != 50 {
		t.Errorf("GetRGBA = (%d, %d, %d, %d), want (200, 150, 100, 50)", r, g, b, a)
	}

	// Out of bounds set
	err = buf.SetRGBA(-1, 0, 0, 0, 0, 0)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Error("SetRGBA with invalid coords should return ErrOutOfBounds")
	}

	// Out of bounds get
	r, g, b, a = buf.GetRGBA(-1, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Error("GetRGBA with invalid coords should return (0,0,0,0)")
	}
}

func TestImageBuf_GetSetRGBA_BGRA8(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatBGRA8)

	// Set and get - should handle BGRA conversion
	err := buf.SetRGBA(5, 5, 200, 150, 100, 50)
	if err != nil {
		t.Fatalf("SetRGBA failed: %v", err)
	}

	r, g, b, a := buf.GetRGBA(5, 5)
	if r != 200 || g != 150 || b != 100 || a != 50 {
		t.Errorf("GetRGBA = (%d, %d, %d, %d), want (200, 150, 100, 50)", r, g, b, a)
	}

	// Check actual memory layout is BGRA
	pixel := buf.PixelBytes(5, 5)
	if pixel[0] != 100 || pixel[1] != 150 || pixel[2] != 200 || pixel[3] != 50 {
		t.Errorf("BGRA layout = (%d, %d, %d, %d), want (100, 150, 200, 50)",
			pixel[0], pixel[1], pixel[2], pixel[3])
	}
}

func TestImageBuf_GetSetRGBA_Gray8(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatGray8)

	// Set RGB - should convert to grayscale
	_ = buf.SetRGBA(0, 0, 200, 100, 50, 255)

	// Get should return gray value in all channels
	r, g, b, a := buf.GetRGBA(0, 0)
	if r != g || g != b {
		t.Errorf("Gray8 should have equal RGB, got (%d, %d, %d)", r, g, b)
	}
	if a != 255 {
		t.Errorf("Gray8 alpha should be 255, got %d", a)
	}

	// Verify luminance calculation: 0.299*200 + 0.587*100 + 0.114*50 = 59.8 + 58.7 + 5.7 = 124.2 ≈ 124
	expected := uint8((200*299 + 100*587 + 50*114) / 1000)
	if r != expected {
		t.Errorf("Gray8 luminance = %d, want %d", r, expected)
	}
}

func TestImageBuf_GetSetRGBA_RGB8(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatRGB8)

	_ = buf.SetRGBA(0, 0, 200, 100, 50, 128)

	r, g, b, a := buf.GetRGBA(0, 0)
	if r != 200 || g != 100 || b != 50 {
		t.Errorf("RGB8 = (%d, %d, %d), want (200, 100, 50)", r, g, b)
	}
	if a != 255 {
		t.Errorf("RGB8 alpha should be 255, got %d", a)
	}
}

func TestImageBuf_Clear(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatRGBA8)

	// Set some data
	buf.Fill(255, 255, 255, 255)

	// Clear
	buf.Clear()

	// All pixels should be zero
	for i := range buf.Data() {
		if buf.Data()[i] != 0 {
			t.Fatalf("Clear() didn't zero byte at index %d", i)
		}
	}
}

func TestImageBuf_Fill(t *testing.T) {
	buf, _ := NewImageBuf(5, 5, FormatRGBA8)

	buf.Fill(100, 150, 200, 250)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			r, g, b, a := buf.GetRGBA(x, y)
			if r != 100 || g != 150 || b != 200 || a != 250 {
				t.Errorf("Fill: pixel (%d,%d) = (%d,%d,%d,%d), want (100,150,200,250)",
					x, y, r, g, b, a)
			}
		}
	}
}

func TestImageBuf_Gray16(t *testing.T) {
	buf, _ := NewImageBuf(10, 10, FormatGray16)

	// Set a gray value
	_ = buf.SetRGBA(0, 0, 200, 200, 200, 255)

	// Get should return the value
	r, g, b, a := buf.GetRGBA(0, 0)
	if r != g || g != b {
		t.Errorf("Gray16 RGB should be equal, got (%d, %d, %d)", r, g, b)
	}
	if a != 255 {
		t.Errorf("Gray16 alpha should be 255, got %d", a)
	}
}

func BenchmarkNewImageBuf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewImageBuf(1920, 1080, FormatRGBA8)
	}
}

func BenchmarkImageBuf_GetRGBA(b *testing.B) {
	buf, _ := NewImageBuf(1920, 1080, FormatRGBA8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _, _ = buf.GetRGBA(i%1920, (i/1920)%1080)
	}
}

func BenchmarkImageBuf_SetRGBA(b *testing.B) {
	buf, _ := NewImageBuf(1920, 1080, FormatRGBA8)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = buf.SetRGBA(i%1920, (i/1920)%1080, 128, 128, 128, 255)
	}
}
