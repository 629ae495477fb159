package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mungbws1031/leo-study/internal/pkg/logger"
)

// FontFetchTimeout bounds the download of a remote font.
const FontFetchTimeout = 15 * time.Second

// FontConfig says where to find a TrueType font with Hangul glyphs.
type FontConfig struct {
	Path string
	URL  string
}

// Font is a parsed TrueType font plus its raw bytes, which the PDF writer
// embeds.
type Font struct {
	Name     string
	Data     []byte
	TTF      *truetype.Font
	Fallback bool
}

// DefaultFont is the bundled Go Regular font. It has no Hangul glyphs.
func DefaultFont() *Font {
	f, err := parseFont("goregular", goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("render: bundled font: %v", err))
	}
	f.Fallback = true
	return f
}

// LoadFont tries the configured path, then the URL, and otherwise returns
// the bundled font with a warning.
func LoadFont(ctx context.Context, cfg FontConfig, log *logger.Logger) *Font {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Path != "" {
		data, err := os.ReadFile(cfg.Path)
		if err == nil {
			var f *Font
			if f, err = parseFont(cfg.Path, data); err == nil {
				return f
			}
		}
		log.Warn("font file unusable", "path", cfg.Path, "error", err.Error())
	}
	if cfg.URL != "" {
		f, err := fetchFont(ctx, http.DefaultClient, cfg.URL)
		if err == nil {
			return f
		}
		log.Warn("font download failed", "url", cfg.URL, "error", err.Error())
	}
	log.Warn("using bundled font without Hangul glyphs; set LEO_FONT_PATH or LEO_FONT_URL")
	return DefaultFont()
}

func fetchFont(ctx context.Context, client *http.Client, url string) (*Font, error) {
	ctx, cancel := context.WithTimeout(ctx, FontFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseFont(url, data)
}

func parseFont(name string, data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{Name: name, Data: data, TTF: ttf}, nil
}
