package template

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"sync"

	"github.com/disintegration/imaging"
)

// Resource is an immutable wrapper around an encoded template image. It is
// created once, never mutated, and safe to share across concurrent searches.
// Decoding happens lazily and exactly once.
type Resource struct {
	data []byte
	path string

	once      sync.Once
	img       image.Image
	decodeErr error
}

// IOError reports a template file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("template: read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports template bytes that could not be parsed as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template: decode buffer: %v", e.Err)
	}
	return fmt.Sprintf("template: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Load reads the file at path into a Resource. The bytes are not decoded yet;
// a corrupt file surfaces as a DecodeError on first use.
func Load(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return &Resource{data: data, path: path}, nil
}

// FromBuffer wraps already-loaded encoded image bytes. The slice is copied so
// later caller mutations cannot leak into the resource.
func FromBuffer(data []byte) *Resource {
	return &Resource{data: append([]byte(nil), data...)}
}

// Path returns the origin file path, or "" for buffer-backed resources.
func (r *Resource) Path() string { return r.path }

// Bytes returns a copy of the encoded image bytes.
func (r *Resource) Bytes() []byte { return append([]byte(nil), r.data...) }

// Decode returns the decoded image, decoding on first call only.
func (r *Resource) Decode() (image.Image, error) {
	r.once.Do(func() {
		img, err := imaging.Decode(bytes.NewReader(r.data))
		if err != nil {
			r.decodeErr = &DecodeError{Path: r.path, Err: err}
			return
		}
		r.img = img
	})
	return r.img, r.decodeErr
}

// Size returns the decoded template dimensions.
func (r *Resource) Size() (w, h int, err error) {
	img, err := r.Decode()
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
