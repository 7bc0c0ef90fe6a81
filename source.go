package scrollreel

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// FrameSource fetches and decodes a frame image. Implementations must be
// safe for concurrent use; the loader calls Fetch from many goroutines.
type FrameSource interface {
	Fetch(ctx context.Context, path string) (image.Image, error)
}

// MissingResourceError reports a frame that could not be opened or decoded.
type MissingResourceError struct {
	Path string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("missing file: %s", e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

// FSSource reads frames from a file system such as os.DirFS or an embed.FS.
type FSSource struct {
	FS fs.FS
	// MaxSize, when positive, bounds the larger frame dimension. Oversize
	// frames are downsampled before upload.
	MaxSize int
}

// NewFSSource creates an FSSource reading from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{FS: fsys}
}

// Fetch opens and decodes the frame at path.
func (s *FSSource) Fetch(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(path)
	if err != nil {
		return nil, &MissingResourceError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &MissingResourceError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if s.MaxSize > 0 {
		b := img.Bounds()
		if b.Dx() > s.MaxSize || b.Dy() > s.MaxSize {
			img = imaging.Fit(img, s.MaxSize, s.MaxSize, imaging.Lanczos)
		}
	}
	return img, nil
}
