// ABOUTME: Fetches remote media files into a local cache directory
// ABOUTME: Lets sounds and pictures be opened from http and https URLs
package download

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single download
const DefaultTimeout = 30 * time.Second

// extensions maps the content types served for media to file extensions
var extensions = map[string]string{
	"audio/wav":    ".wav",
	"audio/x-wav":  ".wav",
	"audio/wave":   ".wav",
	"audio/mpeg":   ".mp3",
	"audio/flac":   ".flac",
	"audio/x-flac": ".flac",
	"image/png":    ".png",
	"image/jpeg":   ".jpg",
	"image/gif":    ".gif",
	"image/bmp":    ".bmp",
	"image/tiff":   ".tiff",
	"image/webp":   ".webp",
}

// Downloader caches remote media by URL
type Downloader struct {
	cacheDir string
	client   *http.Client
}

// IsRemote reports whether name is an http or https URL
func IsRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// NewDownloader creates a downloader caching into cacheDir.
// An empty cacheDir selects a directory under the system temp dir.
func NewDownloader(cacheDir string) (*Downloader, error) {
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "jes4go-media")
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Downloader{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// CacheDir returns the directory holding downloaded files
func (d *Downloader) CacheDir() string {
	return d.cacheDir
}

// Fetch downloads url unless it is already cached and returns the local path.
// The file keeps the URL's extension, or one derived from the Content-Type.
func (d *Downloader) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty URL")
	}

	key := cacheKey(url)
	if cached, ok := d.lookup(key); ok {
		log.Printf("Media cache hit: %s", cached)
		return cached, nil
	}

	log.Printf("Downloading media: %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid media URL: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media download failed: HTTP %d", resp.StatusCode)
	}

	ext := urlExtension(url)
	if ext == "" {
		ext = contentTypeExtension(resp.Header.Get("Content-Type"))
	}
	cachePath := filepath.Join(d.cacheDir, key+ext)

	tmpPath := filepath.Join(d.cacheDir, "."+key+"."+uuid.New().String()+".part")
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save media: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save media: %w", err)
	}
	if err := os.Rename(tmpPath, cachePath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save media: %w", err)
	}

	log.Printf("Media saved: %s", cachePath)
	return cachePath, nil
}

// Cleanup removes the cache directory
func (d *Downloader) Cleanup() error {
	return os.RemoveAll(d.cacheDir)
}

func (d *Downloader) lookup(key string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(d.cacheDir, key+"*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

func cacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash[:8])
}

// urlExtension extracts the file extension from a URL path
func urlExtension(url string) string {
	url = strings.Split(url, "?")[0]
	url = strings.Split(url, "#")[0]

	// ignore the host part of a bare "http://example.com"
	if i := strings.Index(url, "://"); i >= 0 {
		rest := url[i+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return ""
		}
		url = rest[slash:]
	}

	return strings.ToLower(filepath.Ext(url))
}

func contentTypeExtension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return extensions[mediaType]
}
