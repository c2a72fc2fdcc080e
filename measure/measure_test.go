package measure

import (
	"errors"
	"testing"
)

func TestMonospace(t *testing.T) {
	m := Monospace{Advance: 0.5, LineHeight: 1.5, BoldFactor: 1.5}

	tests := []struct {
		name  string
		text  string
		font  FontSpec
		wantW float64
		wantH float64
	}{
		{"simple", "abcd", FontSpec{Size: 10}, 20, 15},
		{"bold", "abcd", FontSpec{Size: 10, Bold: true}, 30, 15},
		{"multiline widest", "ab\nabcdef", FontSpec{Size: 10}, 30, 30},
		{"runes not bytes", "日本語", FontSpec{Size: 20}, 30, 30},
		{"zero size", "abc", FontSpec{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := m.Measure(tt.text, tt.font)
			if err != nil {
				t.Fatalf("Measure() error = %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure() = (%v, %v), want (%v, %v)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	var m Measurer = Func(func(string, FontSpec) (float64, float64, error) {
		return 0, 0, ErrUnavailable
	})
	if _, _, err := m.Measure("x", FontSpec{Size: 10}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Measure() error = %v, want ErrUnavailable", err)
	}
}

func TestFaceMeasurer(t *testing.T) {
	m := NewFaceMeasurer()
	defer m.Close()

	short, h1, err := m.Measure("Hi", FontSpec{Size: 18})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	long, _, err := m.Measure("Hello, presentation world", FontSpec{Size: 18})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if short <= 0 || long <= short {
		t.Errorf("expected 0 < short (%v) < long (%v)", short, long)
	}
	if h1 <= 0 {
		t.Errorf("height = %v, want > 0", h1)
	}

	big, h2, err := m.Measure("Hi", FontSpec{Size: 36})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if big <= short || h2 <= h1 {
		t.Errorf("doubling size should grow both dimensions: %v,%v vs %v,%v", big, h2, short, h1)
	}

	_, two, err := m.Measure("a\nb", FontSpec{Size: 18})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if two != 2*h1 {
		t.Errorf("two-line height = %v, want %v", two, 2*h1)
	}

	for _, spec := range []FontSpec{
		{Size: 12, Bold: true},
		{Size: 12, Italic: true},
		{Size: 12, Bold: true, Italic: true},
		{Size: 12, Family: "mono"},
	} {
		if w, _, err := m.Measure("style", spec); err != nil || w <= 0 {
			t.Errorf("Measure(%+v) = %v, %v", spec, w, err)
		}
	}
}
