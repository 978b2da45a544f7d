// Package bigword renders words as large block art using half-block characters.
package bigword

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are common system fonts with Latin and Cyrillic coverage.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

const fontSize = 48

var (
	loadOnce   sync.Once
	loadedFace font.Face

	mu    sync.Mutex
	cache = make(map[string]string)
)

func load() {
	loadOnce.Do(func() {
		for _, path := range fontPaths {
			if face, err := LoadFace(path); err == nil {
				loadedFace = face
				return
			}
		}
	})
}

// LoadFace parses a font file into a face. OpenType collections and single
// fonts are tried first, then the freetype TrueType parser.
func LoadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := &opentype.FaceOptions{Size: fontSize, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face, nil
			}
		}
	}

	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face, nil
		}
	}

	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: fontSize, DPI: 72}), nil
}

// SetFace overrides the face used for rendering and clears the cache.
func SetFace(face font.Face) {
	loadOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	loadedFace = face
	cache = make(map[string]string)
}

// IsAvailable returns true if a usable font was found.
func IsAvailable() bool {
	load()
	return loadedFace != nil
}

// Render draws word as half-block art rows cells tall. It returns "" when no
// font is available or the result would be wider than maxCols.
func Render(word string, rows, maxCols int) string {
	if word == "" || rows <= 0 || !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s\x00%d\x00%d", word, rows, maxCols)
	mu.Lock()
	defer mu.Unlock()
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := render(loadedFace, word, rows, maxCols)
	cache[key] = rendered
	return rendered
}

func render(face font.Face, word string, rows, maxCols int) string {
	bounds, _ := font.BoundString(face, word)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	if glyphWidth <= 0 || ascent+descent <= 0 {
		return ""
	}

	padding := 2
	srcWidth := glyphWidth + padding*2
	srcHeight := ascent + descent + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(padding-bounds.Min.X.Floor(), padding+ascent),
	}
	d.DrawString(word)

	// Half-blocks make each cell one pixel wide and two pixels tall.
	targetHeight := rows * 2
	targetWidth := srcWidth * targetHeight / srcHeight
	if targetWidth <= 0 {
		return ""
	}
	if maxCols > 0 && targetWidth > maxCols {
		return ""
	}

	scaled := scaleDown(srcImg, targetWidth, targetHeight)
	return imageToHalfBlocks(scaled, targetWidth, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)
			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 60

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
