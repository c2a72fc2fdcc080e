//go:build !ocr

// Package ocr recognizes text inside slide images so the structure analyzer
// can count it alongside regular text elements.
//
// This build has no Tesseract support: New fails with ErrOCRNotEnabled.
// Build with -tags ocr to enable recognition.
package ocr

import "errors"

// ErrOCRNotEnabled is returned by New in builds without the ocr tag.
var ErrOCRNotEnabled = errors.New("ocr: not enabled; rebuild with -tags ocr")

// Client is the placeholder used without the ocr tag. Its zero value
// recognizes nothing.
type Client struct{}

func New(opts ...Option) (*Client, error) {
	_ = buildOptions(opts)
	return nil, ErrOCRNotEnabled
}

func (c *Client) Close() error { return nil }

func (c *Client) RecognizeImage([]byte) (string, error) {
	return "", ErrOCRNotEnabled
}
