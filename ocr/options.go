package ocr

// SegMode is a Tesseract page segmentation mode.
type SegMode int

// Segmentation modes that suit slide images. The values match Tesseract's.
const (
	SegAuto        SegMode = 3
	SegSingleBlock SegMode = 6
	SegSingleLine  SegMode = 7
	SegSparseText  SegMode = 11
)

// Option configures a Client.
type Option func(*options)

type options struct {
	languages []string
	segMode   SegMode
}

// WithLanguages sets the Tesseract languages, e.g. "eng" and "chi_sim".
// The default is English.
func WithLanguages(langs ...string) Option {
	return func(o *options) {
		if len(langs) > 0 {
			o.languages = langs
		}
	}
}

// WithSegMode overrides the segmentation mode. Slide images are mostly
// diagrams with scattered labels, so the default is SegSparseText.
func WithSegMode(m SegMode) Option {
	return func(o *options) { o.segMode = m }
}

func buildOptions(opts []Option) options {
	o := options{languages: []string{"eng"}, segMode: SegSparseText}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
