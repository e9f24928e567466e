package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// IconTexture rasterizes an SVG file to a square texture of the given pixel
// size. Results are cached; a nil return means the file could not be loaded.
func IconTexture(renderer *sdl.Renderer, path string, size int32) *sdl.Texture {
	key := fmt.Sprintf("%s@%d", path, size)
	if texture := iconCache.Get(key); texture != nil {
		return texture
	}

	texture, err := rasterizeSVG(renderer, path, size)
	if err != nil {
		GetInternalLogger().Warn("Failed to rasterize SVG icon", "path", path, "error", err)
		return nil
	}

	iconCache.Set(key, texture)
	return texture
}

func rasterizeSVG(renderer *sdl.Renderer, path string, size int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	w := int(size)
	icon.SetTarget(0, 0, float64(w), float64(w))

	rgba := image.NewRGBA(image.Rect(0, 0, w, w))
	scanner := rasterx.NewScannerGV(w, w, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, w, scanner), 1.0)

	// image.RGBA byte order is R,G,B,A which SDL reads as ABGR8888 on
	// little-endian hosts.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
