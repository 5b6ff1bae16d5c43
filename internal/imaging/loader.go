package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// PageLoader caches decoded page images keyed by path.
//
// The batch driver loads each page once, crops every product from it and then
// evicts it, so at most one page is held at a time. The overlay renderer shares
// a loader across goroutines.
//
// PageLoader is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// A decoded catalog page is tens of megabytes. Pages stay cached until Evict
// is called, so callers evict each page as soon as they are done with it.
//
// # Example Usage
//
//	loader := imaging.NewPageLoader()
//	page, err := loader.Load("src/assets/images/page-02.png")
//	if err != nil {
//	    return err
//	}
//	defer loader.Evict("src/assets/images/page-02.png")
type PageLoader struct {
	mu    sync.RWMutex
	pages map[string]image.Image
}

// NewPageLoader creates an empty loader.
func NewPageLoader() *PageLoader {
	return &PageLoader{
		pages: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// Parameters:
//   - path: File path of the page image. PNG, JPEG, GIF, BMP and TIFF are
//     supported.
//
// Returns:
//   - image.Image: The decoded image, shared with other callers of Load for
//     the same path. Callers must not modify it.
//   - error: File or decoding errors. Failed loads are not cached.
func (l *PageLoader) Load(path string) (image.Image, error) {
	l.mu.RLock()
	if img, ok := l.pages[path]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page image: %w", err)
	}

	l.mu.Lock()
	l.pages[path] = img
	l.mu.Unlock()

	return img, nil
}

// Evict drops the cached image for path. Unknown paths are ignored.
func (l *PageLoader) Evict(path string) {
	l.mu.Lock()
	delete(l.pages, path)
	l.mu.Unlock()
}

// Len reports how many pages are cached.
func (l *PageLoader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.pages)
}
