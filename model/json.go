package model

import "encoding/json"

type bboxJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toBBoxJSON(b BBox) bboxJSON {
	return bboxJSON{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// MarshalJSON implements json.Marshaler.
func (t *TextElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string   `json:"id"`
		Kind     string   `json:"kind"`
		BBox     bboxJSON `json:"bbox"`
		Content  string   `json:"content"`
		Font     string   `json:"font,omitempty"`
		FontSize float64  `json:"fontSize"`
		Bold     bool     `json:"bold,omitempty"`
		Italic   bool     `json:"italic,omitempty"`
		Color    string   `json:"color"`
	}{
		ID:       t.ID,
		Kind:     t.Kind().String(),
		BBox:     toBBoxJSON(t.BBox),
		Content:  t.Content,
		Font:     t.Style.FontFamily,
		FontSize: t.Style.FontSize,
		Bold:     t.Style.Bold,
		Italic:   t.Style.Italic,
		Color:    t.Style.Color.Hex(),
	})
}

// MarshalJSON implements json.Marshaler.
func (s *ShapeElement) MarshalJSON() ([]byte, error) {
	type point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	return json.Marshal(struct {
		ID          string   `json:"id"`
		Kind        string   `json:"kind"`
		Shape       string   `json:"shape"`
		BBox        bboxJSON `json:"bbox"`
		Start       point    `json:"start"`
		End         point    `json:"end"`
		StrokeWidth float64  `json:"strokeWidth"`
		Stroke      string   `json:"stroke"`
	}{
		ID:          s.ID,
		Kind:        s.Kind().String(),
		Shape:       s.Shape.String(),
		BBox:        toBBoxJSON(s.BoundingBox()),
		Start:       point{s.Start.X, s.Start.Y},
		End:         point{s.End.X, s.End.Y},
		StrokeWidth: s.StrokeWidth,
		Stroke:      s.Stroke.Hex(),
	})
}

// MarshalJSON implements json.Marshaler. Image bytes are not included.
func (i *ImageElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string   `json:"id"`
		Kind    string   `json:"kind"`
		BBox    bboxJSON `json:"bbox"`
		Format  string   `json:"format"`
		Size    int      `json:"size"`
		AltText string   `json:"altText,omitempty"`
	}{
		ID:      i.ID,
		Kind:    i.Kind().String(),
		BBox:    toBBoxJSON(i.BBox),
		Format:  i.Format.String(),
		Size:    len(i.Data),
		AltText: i.AltText,
	})
}
