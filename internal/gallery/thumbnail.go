package gallery

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultThumbnailWidth is used when no width is requested.
const DefaultThumbnailWidth = 480

const thumbnailQuality = 85

// Thumbnail loads a screenshot from a URL or a local path, scales it down to
// width keeping the aspect ratio and returns it encoded as webp.
func Thumbnail(client *http.Client, source string, width int) ([]byte, error) {
	src, err := loadImage(client, source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, scale(src, width), &webp.Options{Lossless: false, Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

// scale resizes src to width. Images already narrower are only copied.
func scale(src image.Image, width int) image.Image {
	if width <= 0 {
		width = DefaultThumbnailWidth
	}

	bounds := src.Bounds()
	if bounds.Dx() <= width {
		width = bounds.Dx()
	}

	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}

func loadImage(client *http.Client, source string) (image.Image, error) {
	var reader io.Reader

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if client == nil {
			client = http.DefaultClient
		}

		log.Debug().Str("url", source).Msg("Downloading screenshot")
		resp, err := client.Get(source)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("download failed: %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(body)
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()

		reader = f
	}

	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}

	log.Trace().Str("format", format).Str("source", source).Msg("Screenshot decoded")

	return img, nil
}
