package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// FontWeight selects one of the bundled Go fonts.
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// ResourceManager is responsible for centralized management of page resources.
// It provides loading and caching mechanisms for gallery images and font faces,
// ensuring that resources are decoded only once and reused by every card.
//
// The ResourceManager implements the following key features:
//   - Image loading and caching (PNG, JPEG and WebP)
//   - Procedural placeholders for gallery images that are missing on disk
//   - Font faces built from the bundled Go fonts, cached per weight and size
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps
// and are only touched from the Ebitengine update goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	img := rm.LoadImageOrPlaceholder("assets/images/moon.png")
//	face := rm.Face(FontBold, 24)
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image              // Cache for loaded images: path -> Image
	faceCache     map[faceKey]*text.GoTextFace          // Cache for text faces: weight+size -> Face
	faceSources   map[FontWeight]*text.GoTextFaceSource // Parsed font sources
	placeholders  map[PlaceholderKind]*ebiten.Image     // Generated placeholders, shared by path
	missingImages []string                              // Paths that fell back to a placeholder
}

type faceKey struct {
	weight FontWeight
	size   float64
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		faceCache:    make(map[faceKey]*text.GoTextFace),
		faceSources:  make(map[FontWeight]*text.GoTextFaceSource),
		placeholders: make(map[PlaceholderKind]*ebiten.Image),
	}
}

// DecodeImage reads and decodes an image through the embedded package.
// Supported formats: PNG, JPEG, WebP.
func DecodeImage(path string) (image.Image, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The resource path of the image (e.g., "assets/images/moon.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageOrPlaceholder loads a gallery image and never fails: a missing or
// corrupted file is replaced by a procedural placeholder chosen from the file name.
func (rm *ResourceManager) LoadImageOrPlaceholder(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	rm.missingImages = append(rm.missingImages, path)

	kind := PlaceholderKindFor(path)
	if cached, ok := rm.placeholders[kind]; ok {
		rm.imageCache[path] = cached
		return cached
	}
	placeholder := ebiten.NewImageFromImage(GeneratePlaceholder(kind))
	rm.placeholders[kind] = placeholder
	rm.imageCache[path] = placeholder
	return placeholder
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// MissingImages returns the paths that were replaced by placeholders.
func (rm *ResourceManager) MissingImages() []string {
	return rm.missingImages
}

// Face returns a text face for the bundled Go font at the given size.
// Faces are cached with a key combining weight and size.
func (rm *ResourceManager) Face(weight FontWeight, size float64) *text.GoTextFace {
	key := faceKey{weight: weight, size: size}
	if cachedFace, exists := rm.faceCache[key]; exists {
		return cachedFace
	}

	source, err := rm.faceSource(weight)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.faceCache[key] = face
	return face
}

func (rm *ResourceManager) faceSource(weight FontWeight) (*text.GoTextFaceSource, error) {
	if source, ok := rm.faceSources[weight]; ok {
		return source, nil
	}

	ttf := goregular.TTF
	if weight == FontBold {
		ttf = gobold.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source (weight %d): %w", weight, err)
	}
	rm.faceSources[weight] = source
	return source, nil
}
