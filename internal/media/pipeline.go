// Package media compresses event posters and stores them as WebP objects.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// ContentTypeWebP is the content type of every stored poster.
const ContentTypeWebP = "image/webp"

const (
	defaultMaxWidth    = 1080
	defaultQuality     = 80
	defaultQualityStep = 10
	defaultMinQuality  = 10
	defaultMaxBytes    = 130 * 1024
	defaultMaxPixels   = 40_000_000
	sniffLen           = 512
)

// Upload is a raw poster file received from the client.
type Upload struct {
	Filename string
	Data     []byte
}

// Processed is a compressed WebP poster ready for storage.
type Processed struct {
	Data    []byte
	Width   int
	Height  int
	Quality int
}

// Image returns the poster in the form the moderation gate consumes.
func (p Processed) Image() domain.Image {
	return domain.Image{ContentType: ContentTypeWebP, Data: p.Data}
}

// Options tunes the compression loop. Zero fields take defaults.
type Options struct {
	MaxWidth    int
	Quality     int
	QualityStep int
	MinQuality  int
	MaxBytes    int
	// MaxPixels bounds width*height before the full decode.
	MaxPixels int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxWidth
	}
	if o.Quality <= 0 {
		o.Quality = defaultQuality
	}
	if o.QualityStep <= 0 {
		o.QualityStep = defaultQualityStep
	}
	if o.MinQuality <= 0 {
		o.MinQuality = defaultMinQuality
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = defaultMaxPixels
	}
	return o
}

// Pipeline decodes, resizes and re-encodes posters.
type Pipeline struct {
	opts Options
	log  *slog.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(logger *slog.Logger, opts Options) *Pipeline {
	return &Pipeline{
		opts: opts.withDefaults(),
		log:  logger.With("component", "media"),
	}
}

// SniffType returns the detected content type if it is an accepted poster format.
func SniffType(data []byte) (string, error) {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	ct := http.DetectContentType(head)
	switch ct {
	case "image/jpeg", "image/png", ContentTypeWebP:
		return ct, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, ct)
}

// Process converts an upload to a WebP poster no wider than MaxWidth and,
// where quality allows, no larger than MaxBytes.
func (p *Pipeline) Process(file Upload) (Processed, error) {
	if len(file.Data) == 0 {
		return Processed{}, domain.NewValidationError("posters", "file is empty")
	}

	ct, err := SniffType(file.Data)
	if err != nil {
		return Processed{}, err
	}

	cfg, err := decodeConfig(file.Data, ct)
	if err != nil {
		return Processed{}, fmt.Errorf("%w: read header of %s: %v", domain.ErrUnsupportedMedia, file.Filename, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > p.opts.MaxPixels {
		p.log.Warn("poster dimensions rejected",
			slog.String("filename", file.Filename),
			slog.Int("width", cfg.Width),
			slog.Int("height", cfg.Height),
		)
		return Processed{}, domain.NewValidationError("posters",
			fmt.Sprintf("image must not exceed %d megapixels", p.opts.MaxPixels/1_000_000))
	}

	img, err := decode(file.Data, ct)
	if err != nil {
		return Processed{}, fmt.Errorf("%w: decode %s: %v", domain.ErrUnsupportedMedia, file.Filename, err)
	}

	if img.Bounds().Dx() > p.opts.MaxWidth {
		img = imaging.Resize(img, p.opts.MaxWidth, 0, imaging.Lanczos)
	}

	data, quality, err := p.encode(img)
	if err != nil {
		return Processed{}, fmt.Errorf("encode webp: %w", err)
	}

	b := img.Bounds()
	p.log.Debug("poster processed",
		slog.String("filename", file.Filename),
		slog.Int("in_bytes", len(file.Data)),
		slog.Int("out_bytes", len(data)),
		slog.Int("quality", quality),
	)

	return Processed{Data: data, Width: b.Dx(), Height: b.Dy(), Quality: quality}, nil
}

// encode lowers quality by QualityStep until the output fits MaxBytes or
// MinQuality is reached.
func (p *Pipeline) encode(img image.Image) ([]byte, int, error) {
	q := p.opts.Quality
	for {
		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(q)}); err != nil {
			return nil, 0, err
		}
		if buf.Len() <= p.opts.MaxBytes || q <= p.opts.MinQuality {
			return buf.Bytes(), q, nil
		}
		q = max(q-p.opts.QualityStep, p.opts.MinQuality)
	}
}

// decodeConfig reads only the image header.
func decodeConfig(data []byte, contentType string) (image.Config, error) {
	if contentType == ContentTypeWebP {
		return webp.DecodeConfig(bytes.NewReader(data))
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return cfg, err
}

func decode(data []byte, contentType string) (image.Image, error) {
	if contentType == ContentTypeWebP {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}
