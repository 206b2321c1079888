package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

const (
	qualityFloor = 40
	qualityStep  = 10
)

// Reducer shrinks a captured image to a bounded-size JPEG. Best effort: the
// quality floor guarantees termination, not that the byte budget is met.
type Reducer struct {
	MaxDimension int
	StartQuality int
	ByteBudget   int
}

func NewReducer(maxDimension, startQuality, byteBudget int) *Reducer {
	return &Reducer{
		MaxDimension: maxDimension,
		StartQuality: startQuality,
		ByteBudget:   byteBudget,
	}
}

// Reduce downsamples, rescales, and re-encodes the input. Empty input yields
// empty output: a missing photo is not an error.
func (r *Reducer) Reduce(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// Bounds first, without decoding pixel data.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image bounds: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	sample := sampleFactor(cfg.Width, cfg.Height, r.MaxDimension)
	w := maxInt(1, cfg.Width/sample)
	h := maxInt(1, cfg.Height/sample)
	scaled := scaleTo(img, w, h)

	// The power-of-two pass leaves dimensions below 2*MaxDimension; one more
	// uniform scale clamps the longer side to exactly MaxDimension.
	if w > r.MaxDimension || h > r.MaxDimension {
		ratio := float64(maxInt(w, h)) / float64(r.MaxDimension)
		outW := maxInt(1, int(float64(w)/ratio))
		outH := maxInt(1, int(float64(h)/ratio))
		scaled = scaleTo(scaled, outW, outH)
	}

	var buf bytes.Buffer
	quality := r.StartQuality
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	for buf.Len() > r.ByteBudget && quality > qualityFloor {
		quality -= qualityStep
		buf.Reset()
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg at quality %d: %w", quality, err)
		}
	}

	return buf.Bytes(), nil
}

// sampleFactor finds the power-of-two downsample factor: halve while half of
// either dimension would still cover the target.
func sampleFactor(width, height, maxDim int) int {
	sample := 1
	for width/2 >= maxDim || height/2 >= maxDim {
		width /= 2
		height /= 2
		sample *= 2
	}
	return sample
}

func scaleTo(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		if rgba, ok := src.(*image.RGBA); ok {
			return rgba
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
