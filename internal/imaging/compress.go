// Package imaging сжимает загружаемые изображения орнаментов и определяет их пропорции.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Options - параметры сжатия.
type Options struct {
	// Quality 0..1; 1 - без потерь (WebP lossless).
	Quality float64
	// MaxSizeMB - целевой размер результата.
	MaxSizeMB float64
	// MaxWidthOrHeight - ограничение на большую сторону, px.
	MaxWidthOrHeight int
}

// DefaultOptions - значения для орнаментов.
func DefaultOptions() Options {
	return Options{Quality: 0.9, MaxSizeMB: 0.5, MaxWidthOrHeight: 800}
}

// ErrUnsupportedImage - данные не распознаны как png/jpeg/gif/webp.
var ErrUnsupportedImage = errors.New("unsupported image format")

const minSide = 32

// Result - сжатое изображение, готовое для поля image орнамента.
type Result struct {
	DataURI string `json:"image"`
	Format  string `json:"format"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Bytes   int    `json:"bytes"`
}

// Compress декодирует изображение, уменьшает его до MaxWidthOrHeight и кодирует так,
// чтобы уложиться в MaxSizeMB. Прозрачные изображения и Quality >= 1 кодируются в WebP
// без потерь, остальные в JPEG с понижением качества.
func Compress(data []byte, opts Options) (Result, error) {
	def := DefaultOptions()
	if opts.Quality <= 0 || opts.Quality > 1 {
		opts.Quality = def.Quality
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = def.MaxSizeMB
	}
	if opts.MaxWidthOrHeight <= 0 {
		opts.MaxWidthOrHeight = def.MaxWidthOrHeight
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	limit := int(opts.MaxSizeMB * 1024 * 1024)
	lossless := opts.Quality >= 1 || !opaque(src)
	img := fit(src, opts.MaxWidthOrHeight)

	for {
		var buf bytes.Buffer
		var format string
		if lossless {
			format = "webp"
			if err := nativewebp.Encode(&buf, img, nil); err != nil {
				return Result{}, fmt.Errorf("webp encode: %w", err)
			}
		} else {
			format = "jpeg"
			if err := encodeJPEG(&buf, img, opts.Quality, limit); err != nil {
				return Result{}, err
			}
		}

		b := img.Bounds()
		if buf.Len() <= limit || max(b.Dx(), b.Dy()) <= minSide {
			return Result{
				DataURI: "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
				Format:  format,
				Width:   b.Dx(),
				Height:  b.Dy(),
				Bytes:   buf.Len(),
			}, nil
		}
		// не влезли по размеру - уменьшаем на четверть и пробуем снова
		img = fit(img, max(b.Dx(), b.Dy())*3/4)
	}
}

// encodeJPEG понижает качество шагами по 10, пока результат не влезет в limit (не ниже 10).
func encodeJPEG(buf *bytes.Buffer, img image.Image, quality float64, limit int) error {
	q := int(quality * 100)
	for {
		buf.Reset()
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: q}); err != nil {
			return fmt.Errorf("jpeg encode: %w", err)
		}
		if buf.Len() <= limit || q <= 10 {
			return nil
		}
		q -= 10
	}
}

// fit уменьшает изображение так, чтобы большая сторона была не больше side.
func fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}
	if w >= h {
		h = max(1, h*side/w)
		w = side
	} else {
		w = max(1, w*side/h)
		h = side
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
