package ocr

import (
	"errors"

	"github.com/tsawler/slidecraft/model"
)

var (
	// ErrNoImageData is returned for images without bytes.
	ErrNoImageData = errors.New("ocr: image has no data")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("ocr: client closed")
)

// ImageText returns the alt text of img when set, otherwise the text
// recognized in its bytes.
func (c *Client) ImageText(img *model.ImageElement) (string, error) {
	if img.AltText != "" {
		return img.AltText, nil
	}
	if len(img.Data) == 0 {
		return "", ErrNoImageData
	}
	return c.RecognizeImage(img.Data)
}
