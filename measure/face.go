package measure

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type faceKey struct {
	family string
	bold   bool
	italic bool
	size   float64
}

// FaceMeasurer measures text with real glyph advances from the Go font
// family. Sizes are interpreted as pixels at 72 DPI. Faces are cached per
// style and size; a FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	mu    sync.Mutex
	fonts map[faceKey]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFaceMeasurer creates a FaceMeasurer.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{
		fonts: make(map[faceKey]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(text string, spec FontSpec) (float64, float64, error) {
	if spec.Size <= 0 {
		return 0, 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(spec)
	if err != nil {
		return 0, 0, err
	}

	lines := strings.Split(text, "\n")
	var widest fixed.Int26_6
	for _, line := range lines {
		if adv := font.MeasureString(face, line); adv > widest {
			widest = adv
		}
	}
	lineHeight := face.Metrics().Height

	return toFloat(widest), toFloat(lineHeight) * float64(len(lines)), nil
}

// Close releases all cached faces.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, f := range m.faces {
		f.Close()
		delete(m.faces, k)
	}
	return nil
}

func (m *FaceMeasurer) face(spec FontSpec) (font.Face, error) {
	key := faceKey{family: familyOf(spec.Family), bold: spec.Bold, italic: spec.Italic, size: spec.Size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}

	fontKey := key
	fontKey.size = 0
	parsed, ok := m.fonts[fontKey]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData(fontKey))
		if err != nil {
			return nil, fmt.Errorf("%w: parse font: %v", ErrUnavailable, err)
		}
		m.fonts[fontKey] = parsed
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: new face: %v", ErrUnavailable, err)
	}
	m.faces[key] = face
	return face, nil
}

func familyOf(name string) string {
	switch strings.ToLower(name) {
	case "mono", "monospace", "go mono":
		return "mono"
	}
	return ""
}

func fontData(k faceKey) []byte {
	if k.family == "mono" {
		return gomono.TTF
	}
	switch {
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
