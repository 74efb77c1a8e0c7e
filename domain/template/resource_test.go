package template

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 7)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestFromBufferDecodes(t *testing.T) {
	r := FromBuffer(pngBytes(t, 12, 8))
	if r.Path() != "" {
		t.Fatalf("buffer resource should have no path, got %q", r.Path())
	}
	w, h, err := r.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if w != 12 || h != 8 {
		t.Fatalf("expected 12x8, got %dx%d", w, h)
	}
}

func TestFromBufferCopiesInput(t *testing.T) {
	data := pngBytes(t, 4, 4)
	r := FromBuffer(data)
	for i := range data {
		data[i] = 0
	}
	if _, err := r.Decode(); err != nil {
		t.Fatalf("decode after caller mutation: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmpl.png")
	if err := os.WriteFile(path, pngBytes(t, 5, 9), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Path() != path {
		t.Fatalf("path not recorded, got %q", r.Path())
	}
	w, h, err := r.Size()
	if err != nil || w != 5 || h != 9 {
		t.Fatalf("size: %dx%d err=%v", w, h, err)
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist, got %v", err)
	}
}

func TestDecodeGarbageIsDecodeError(t *testing.T) {
	r := FromBuffer([]byte("definitely not an image"))
	_, err := r.Decode()
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	// Decoding is memoized; the second call must return the same failure.
	_, err2 := r.Decode()
	if !errors.As(err2, &decErr) {
		t.Fatalf("expected memoized DecodeError, got %v", err2)
	}
}

func TestDecodeMemoized(t *testing.T) {
	r := FromBuffer(pngBytes(t, 6, 6))
	a, err := r.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b, _ := r.Decode()
	if a != b {
		t.Fatalf("expected the same decoded image instance")
	}
}
