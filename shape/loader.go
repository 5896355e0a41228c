package shape

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/dyncanvas/internal/cache"

	// Decoders available to every loader.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader turns an image source into a decoded bitmap. Load runs on its own
// goroutine and should stop early when ctx is canceled.
type Loader interface {
	Load(ctx context.Context, src string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src string) (image.Image, error)

// Load calls f(ctx, src).
func (f LoaderFunc) Load(ctx context.Context, src string) (image.Image, error) {
	return f(ctx, src)
}

// FileLoader reads images from the file system. Relative sources are
// resolved against Root. A "file://" prefix is accepted.
type FileLoader struct {
	Root string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(src, "file://")
	if l.Root != "" && !filepath.IsAbs(name) {
		name = filepath.Join(l.Root, filepath.FromSlash(name))
	}
	f, err := os.Open(name) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return decode(ctx, f)
}

// HTTPLoader fetches images over HTTP or HTTPS. A nil Client uses
// http.DefaultClient.
type HTTPLoader struct {
	Client *http.Client
}

// Load implements Loader.
func (l HTTPLoader) Load(ctx context.Context, src string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shape: GET %s: %s", src, resp.Status)
	}
	return decode(ctx, resp.Body)
}

// schemeLoader dispatches on the URL scheme of the source.
type schemeLoader struct {
	file FileLoader
	http HTTPLoader
}

// DefaultLoader loads http and https sources with an HTTPLoader and
// everything else with a FileLoader relative to the working directory.
var DefaultLoader Loader = schemeLoader{}

func (l schemeLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if u, err := url.Parse(src); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l.http.Load(ctx, src)
		}
	}
	return l.file.Load(ctx, src)
}

// CachingLoader remembers the bitmaps loaded by next, keyed by source.
// Failed loads are not cached. Cached bitmaps are shared and must not be
// modified.
type CachingLoader struct {
	next   Loader
	bitmap *cache.LRU[string, image.Image]
}

// NewCachingLoader returns a loader keeping up to capacity bitmaps from
// next.
func NewCachingLoader(next Loader, capacity int) *CachingLoader {
	return &CachingLoader{next: next, bitmap: cache.New[string, image.Image](capacity)}
}

// Load implements Loader.
func (l *CachingLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if img, ok := l.bitmap.Get(src); ok {
		return img, nil
	}
	img, err := l.next.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	l.bitmap.Set(src, img)
	return img, nil
}

// Stats returns the cache counters.
func (l *CachingLoader) Stats() cache.Stats { return l.bitmap.Stats() }

// decode decodes r with the registered formats: png, jpeg, gif, bmp, tiff
// and webp.
func decode(ctx context.Context, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
