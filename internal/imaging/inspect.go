package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// edgeThreshold is the Sobel magnitude (0-255) above which a pixel counts
	// as an edge.
	edgeThreshold = 48

	blankMaxLumaStdDev  = 6.0
	blankMaxEdgeDensity = 0.01
)

// Stats summarizes the content of a crop.
type Stats struct {
	// MeanColor is the average color as "#rrggbb".
	MeanColor string `json:"mean_color"`

	// LumaStdDev is the standard deviation of grayscale values (0-255).
	LumaStdDev float64 `json:"luma_std_dev"`

	// EdgeDensity is the share of pixels on a Sobel edge (0.0 to 1.0).
	EdgeDensity float64 `json:"edge_density"`
}

// Blank reports whether the crop looks like empty background: almost no
// brightness variation and almost no edges. A blank product crop usually
// means the rectangle missed the photo.
func (s Stats) Blank() bool {
	return s.LumaStdDev < blankMaxLumaStdDev && s.EdgeDensity < blankMaxEdgeDensity
}

// Inspect computes Stats for img.
//
// Parameters:
//   - img: The crop to summarize. Any bounds are accepted.
//
// Returns:
//   - Stats: Mean color, grayscale standard deviation and Sobel edge density.
//     Edge density is measured over interior pixels only, since the filter's
//     border output does not reflect content. An empty image returns zero
//     stats with MeanColor "#000000".
func Inspect(img image.Image) Stats {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return Stats{MeanColor: "#000000"}
	}

	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}
	n := float64(total)
	mean := colorful.Color{R: sumR / n / 255, G: sumG / n / 255, B: sumB / n / 255}

	// Grayscale returns RGBA with R=G=B; only R is read.
	gray := effect.Grayscale(img)
	gb := gray.Bounds()
	var sum, sumSq float64
	for y := gb.Min.Y; y < gb.Max.Y; y++ {
		for x := gb.Min.X; x < gb.Max.X; x++ {
			f := float64(gray.Pix[gray.PixOffset(x, y)])
			sum += f
			sumSq += f * f
		}
	}
	avg := sum / n
	variance := sumSq/n - avg*avg
	if variance < 0 {
		variance = 0
	}

	// Border pixels are skipped: the filter's edge handling is not content.
	edges := effect.Sobel(img)
	eb := edges.Bounds()
	edgeCount, edgeTotal := 0, 0
	for y := eb.Min.Y + 1; y < eb.Max.Y-1; y++ {
		for x := eb.Min.X + 1; x < eb.Max.X-1; x++ {
			edgeTotal++
			if edges.Pix[edges.PixOffset(x, y)] > edgeThreshold {
				edgeCount++
			}
		}
	}
	density := 0.0
	if edgeTotal > 0 {
		density = float64(edgeCount) / float64(edgeTotal)
	}

	return Stats{
		MeanColor:   mean.Clamped().Hex(),
		LumaStdDev:  math.Round(math.Sqrt(variance)*100) / 100,
		EdgeDensity: math.Round(density*10000) / 10000,
	}
}
