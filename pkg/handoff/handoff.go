package handoff

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Kind discriminates the rendering treatments.
type Kind string

const (
	// KindPending asks the consumer for a neutral placeholder while the
	// first evaluation is in flight.
	KindPending Kind = "pending"

	// KindLink is the actionable-link treatment for mobile and tablet
	// clients, which can follow the URL directly.
	KindLink Kind = "link"

	// KindQRCode is the scannable-code treatment for desktop clients,
	// which hand the URL off to a nearby device.
	KindQRCode Kind = "qrcode"
)

// Error variables for target resolution
var (
	// ErrEmptyURL is returned when the URL is empty or only whitespace
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrQRCodeFailed is returned when QR code generation fails
	ErrQRCodeFailed = errors.New("failed to generate QR code")
)

// defaultQRSize is the QR image size in pixels used when none is specified
const defaultQRSize = 256

// Target is the resolved rendering decision for one classification.
type Target struct {
	Kind Kind   `json:"kind"`
	URL  string `json:"url"`

	// Image is a data-URI PNG, set only for KindQRCode. Embeddable
	// directly into an <img> tag.
	Image string `json:"image,omitempty"`
}

// Option configures target resolution.
type Option func(*config)

type config struct {
	qrSize int
}

// WithQRSize overrides the generated QR image size in pixels.
func WithQRSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.qrSize = size
		}
	}
}

// Resolve maps a classification and a URL onto a rendering target: a
// neutral placeholder while loading, an actionable link for mobile/tablet,
// a scannable code for desktop. The two flags plus the derived desktop
// complement cover every classification, so there is no undetermined
// branch to fall through to.
func Resolve(c device.Classification, rawURL string, opts ...Option) (Target, error) {
	if strings.TrimSpace(rawURL) == "" {
		return Target{}, ErrEmptyURL
	}

	cfg := config{qrSize: defaultQRSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if c.Loading {
		return Target{Kind: KindPending, URL: rawURL}, nil
	}

	if c.MobileOrTablet() {
		return Target{Kind: KindLink, URL: rawURL}, nil
	}

	image, err := qrDataURI(rawURL, cfg.qrSize)
	if err != nil {
		return Target{}, err
	}
	return Target{Kind: KindQRCode, URL: rawURL, Image: image}, nil
}

// qrDataURI encodes content into a base64 data-URI PNG.
func qrDataURI(content string, size int) (string, error) {
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return "", errors.Join(ErrQRCodeFailed, err)
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
