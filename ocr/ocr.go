//go:build ocr

// Package ocr recognizes text inside slide images so the structure analyzer
// can count it alongside regular text elements.
//
// Recognition runs on Tesseract through gosseract, so the Tesseract
// libraries and language data must be installed:
//
//	brew install tesseract
//	apt-get install tesseract-ocr tesseract-ocr-chi-sim
package ocr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Client recognizes image text. One Tesseract handle is shared, so calls
// are serialized.
type Client struct {
	mu sync.Mutex
	tc *gosseract.Client
}

// New starts a Tesseract handle. Close it when done.
func New(opts ...Option) (*Client, error) {
	o := buildOptions(opts)

	tc := gosseract.NewClient()
	if err := tc.SetLanguage(o.languages...); err != nil {
		tc.Close()
		return nil, fmt.Errorf("ocr: languages %v: %w", o.languages, err)
	}
	if err := tc.SetPageSegMode(gosseract.PageSegMode(o.segMode)); err != nil {
		tc.Close()
		return nil, fmt.Errorf("ocr: segmentation mode %d: %w", o.segMode, err)
	}
	return &Client{tc: tc}, nil
}

// Close releases the Tesseract handle. A nil Client is a no-op.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tc == nil {
		return nil
	}
	err := c.tc.Close()
	c.tc = nil
	return err
}

// RecognizeImage returns the trimmed text found in an encoded PNG, JPEG or
// GIF image.
func (c *Client) RecognizeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoImageData
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tc == nil {
		return "", ErrClosed
	}
	if err := c.tc.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("ocr: load image: %w", err)
	}
	out, err := c.tc.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognize: %w", err)
	}
	return strings.TrimSpace(out), nil
}
