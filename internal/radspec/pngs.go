package radspec

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// densityImage maps a bins x bins histogram to a 16-bit grayscale image,
// normalized by its peak and flipped so +Y is up.
func densityImage(hist []Real, bins int, gamma Real) (*image.Gray16, error) {
	if bins <= 0 || len(hist) != bins*bins {
		return nil, fmt.Errorf("histogram has %d cells, want %dx%d", len(hist), bins, bins)
	}
	peak := 0.0
	for _, v := range hist {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1 // empty histogram stays black
	}
	toU16 := func(v Real) uint16 {
		if v <= 0 {
			return 0
		}
		n := clamp(v/peak, 0, 1)
		if gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint16(math.Round(clamp(n*65535.0, 0, 65535)))
	}
	img := image.NewGray16(image.Rect(0, 0, bins, bins))
	for j := 0; j < bins; j++ {
		y := bins - 1 - j
		off := y * img.Stride
		for i := 0; i < bins; i++ {
			g := toU16(hist[j*bins+i])
			// Gray16 stores big-endian uint16.
			img.Pix[off+2*i] = uint8(g >> 8)
			img.Pix[off+2*i+1] = uint8(g)
		}
	}
	return img, nil
}

// SaveDensityPNG writes the sample histogram as a size x size lossless 16-bit PNG.
func SaveDensityPNG(hist []Real, bins int, path string, size int, gamma Real) error {
	src, err := densityImage(hist, bins, gamma)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = bins
	}
	dst := image.NewGray16(image.Rect(0, 0, size, size))
	// Nearest neighbour keeps bin edges crisp.
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
