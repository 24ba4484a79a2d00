// ABOUTME: JES-style media library over sounds and pictures
// ABOUTME: Resolves names against a media path and fetches remote URLs
package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jes4go/jes4go/internal/download"
	"github.com/jes4go/jes4go/pkg/audio"
	"github.com/jes4go/jes4go/pkg/audio/output"
	"github.com/jes4go/jes4go/pkg/picture"
	"github.com/jes4go/jes4go/pkg/sound"
)

// ErrMediaPath means a media path is not an existing directory
var ErrMediaPath = errors.New("invalid media path")

// Library is the entry point students use to make and play media
type Library struct {
	dir        string
	sampleRate int
	out        output.Output
	downloader *download.Downloader
}

// Option configures a Library
type Option func(*Library)

// WithOutput plays sounds through out instead of discarding them
func WithOutput(out output.Output) Option {
	return func(l *Library) {
		l.out = out
	}
}

// WithSampleRate sets the rate of sounds made by MakeEmptySound
func WithSampleRate(rate int) Option {
	return func(l *Library) {
		if rate > 0 {
			l.sampleRate = rate
		}
	}
}

// WithDownloader fetches remote names through dl
func WithDownloader(dl *download.Downloader) Option {
	return func(l *Library) {
		l.downloader = dl
	}
}

// NewLibrary creates a library resolving relative names against dir.
// Without WithOutput, sounds are played to output.Discard.
func NewLibrary(dir string, opts ...Option) *Library {
	l := &Library{
		dir:        dir,
		sampleRate: audio.DefaultSampleRate,
		out:        output.NewDiscard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MediaPath returns the directory relative names resolve against
func (l *Library) MediaPath() string {
	return l.dir
}

// SampleRate returns the rate used by MakeEmptySound
func (l *Library) SampleRate() int {
	return l.sampleRate
}

// SetMediaPath changes the media directory; dir must exist
func (l *Library) SetMediaPath(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMediaPath, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrMediaPath, dir)
	}

	l.dir = dir
	log.Printf("Media path set to %s", dir)
	return nil
}

// Resolve turns a media name into a local file path.
// URLs are downloaded, absolute paths are kept and the rest are joined
// to the media path.
func (l *Library) Resolve(ctx context.Context, name string) (string, error) {
	if download.IsRemote(name) {
		dl, err := l.remote()
		if err != nil {
			return "", err
		}
		return dl.Fetch(ctx, name)
	}

	if filepath.IsAbs(name) || l.dir == "" {
		return name, nil
	}
	return filepath.Join(l.dir, name), nil
}

// ClearCache deletes downloaded media and returns the cache directory
func (l *Library) ClearCache() (string, error) {
	dl, err := l.remote()
	if err != nil {
		return "", err
	}
	if err := dl.Cleanup(); err != nil {
		return "", fmt.Errorf("failed to clear media cache: %w", err)
	}
	log.Printf("Media cache cleared: %s", dl.CacheDir())
	return dl.CacheDir(), nil
}

func (l *Library) remote() (*download.Downloader, error) {
	if l.downloader == nil {
		dl, err := download.NewDownloader("")
		if err != nil {
			return nil, err
		}
		l.downloader = dl
	}
	return l.downloader, nil
}

// MakeSound loads a WAV, MP3, FLAC or raw PCM file by name
func (l *Library) MakeSound(ctx context.Context, name string) (*sound.Sound, error) {
	path, err := l.Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".raw", ".pcm":
		return sound.Import(path)
	default:
		return sound.Load(path)
	}
}

// MakeEmptySound creates a silent mono sound of frames frames.
// A non-positive rate selects the library's sample rate.
func (l *Library) MakeEmptySound(frames, rate int) (*sound.Sound, error) {
	if rate <= 0 {
		rate = l.sampleRate
	}
	return sound.New(frames, sound.WithSamplingRate(rate))
}

// MakePicture loads an image file by name
func (l *Library) MakePicture(ctx context.Context, name string) (*picture.Picture, error) {
	path, err := l.Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	return picture.Load(path)
}

// Play starts s on the library's output and returns at once
func (l *Library) Play(s *sound.Sound) error {
	return s.Play(l.out)
}

// BlockingPlay plays s and waits for it to finish
func (l *Library) BlockingPlay(ctx context.Context, s *sound.Sound) error {
	return s.BlockingPlay(ctx, l.out)
}

// Close releases the audio output
func (l *Library) Close() error {
	return l.out.Close()
}
