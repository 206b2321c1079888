package photo_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"flare/internal/photo"
)

// testImage renders a gradient so JPEG quality changes actually move the
// encoded size; a flat color compresses to almost nothing at any quality.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 7) % 256),
				G: uint8((y * 13) % 256),
				B: uint8((x*y + x) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode reduced image: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestReduce_EmptyInput(t *testing.T) {
	t.Parallel()

	r := photo.NewReducer(1024, 75, 400*1024)
	out, err := r.Reduce(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != nil {
		t.Fatalf("empty input must yield empty output, got %d bytes", len(out))
	}
}

func TestReduce_GarbageInput(t *testing.T) {
	t.Parallel()

	r := photo.NewReducer(1024, 75, 400*1024)
	if _, err := r.Reduce([]byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestReduce_LargeImageClampedToMaxDimension(t *testing.T) {
	t.Parallel()

	r := photo.NewReducer(256, 75, 400*1024)
	src := testImage(t, 2200, 1100)

	out, err := r.Reduce(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	w, h := decodeDims(t, out)
	if w > 256 || h > 256 {
		t.Fatalf("long side must be clamped to 256, got %dx%d", w, h)
	}
	if w != 256 {
		t.Fatalf("landscape long side must hit the limit exactly, got %dx%d", w, h)
	}
	// Aspect ratio survives within rounding.
	if h < 126 || h > 130 {
		t.Fatalf("aspect ratio lost: %dx%d", w, h)
	}
}

func TestReduce_SmallImageNotUpscaled(t *testing.T) {
	t.Parallel()

	r := photo.NewReducer(1024, 75, 400*1024)
	src := testImage(t, 200, 150)

	out, err := r.Reduce(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	w, h := decodeDims(t, out)
	if w != 200 || h != 150 {
		t.Fatalf("image under the limit must keep its dimensions, got %dx%d", w, h)
	}
}

func TestReduce_QualityDropShrinksOutput(t *testing.T) {
	t.Parallel()

	src := testImage(t, 640, 480)

	// A one-byte budget forces the quality loop all the way to the floor.
	atFloor := photo.NewReducer(1024, 75, 1)
	generous := photo.NewReducer(1024, 75, 10*1024*1024)

	small, err := atFloor.Reduce(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	large, err := generous.Reduce(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(small) == 0 || len(large) == 0 {
		t.Fatalf("reduced outputs must not be empty")
	}
	if len(small) >= len(large) {
		t.Fatalf("floor-quality output must be smaller: floor=%d start=%d", len(small), len(large))
	}
}

func TestReduce_AcceptsPNG(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	r := photo.NewReducer(1024, 75, 400*1024)
	out, err := r.Reduce(buf.Bytes())
	if err != nil {
		t.Fatalf("png input must decode: %v", err)
	}

	// Output is always JPEG regardless of input format.
	if _, _, err := image.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("reduced output must decode: %v", err)
	}
	if !bytes.HasPrefix(out, []byte{0xFF, 0xD8}) {
		t.Fatalf("expected JPEG output")
	}
}
