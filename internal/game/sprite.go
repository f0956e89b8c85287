package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// sizeBucket groups circle diameters so only a handful of blurred textures
// are ever generated; each circle scales the nearest one.
const sizeBucket = 25

// softCircle renders a white disc of the given diameter whose edge fades out
// over blur pixels on either side. The image has a blur-wide margin so the
// halo is not clipped; the disc's bounding box starts at (blur, blur).
func softCircle(diameter, blur int) *image.RGBA {
	size := diameter + 2*blur
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	r := float64(diameter) / 2
	c := float64(size) / 2
	b := float64(blur)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			a := coverage(d, r, b)
			if a == 0 {
				continue
			}
			v := uint8(math.Round(a * 255))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}

// coverage is the alpha at distance d from the centre of a disc of radius r
// blurred by b pixels.
func coverage(d, r, b float64) float64 {
	if b <= 0 {
		if d <= r {
			return 1
		}
		return 0
	}
	t := clamp01((d - (r - b)) / (2 * b))
	// smoothstep falloff
	return 1 - t*t*(3-2*t)
}

type spriteCache struct {
	blur     int
	textures map[int]*ebiten.Image
}

func newSpriteCache(blur float64) *spriteCache {
	return &spriteCache{
		blur:     int(math.Round(blur)),
		textures: make(map[int]*ebiten.Image),
	}
}

func bucketFor(size float64) int {
	b := int(math.Round(size/sizeBucket)) * sizeBucket
	if b < sizeBucket {
		b = sizeBucket
	}
	return b
}

// get returns the texture for a circle of the given diameter and the scale to
// draw it at.
func (s *spriteCache) get(size float64) (*ebiten.Image, float64) {
	b := bucketFor(size)
	tex, ok := s.textures[b]
	if !ok {
		tex = ebiten.NewImageFromImage(softCircle(b, s.blur))
		s.textures[b] = tex
	}
	return tex, size / float64(b)
}
