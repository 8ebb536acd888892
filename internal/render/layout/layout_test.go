package layout

import (
	"image"
	"testing"
)

func TestCenterSquare(t *testing.T) {
	testCases := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{name: "landscape", in: image.Rect(0, 0, 800, 480), want: image.Rect(160, 0, 640, 480)},
		{name: "portrait", in: image.Rect(0, 0, 300, 500), want: image.Rect(0, 100, 300, 400)},
		{name: "square", in: image.Rect(10, 10, 60, 60), want: image.Rect(10, 10, 60, 60)},
		{name: "inverted", in: image.Rect(800, 480, 0, 0), want: image.Rect(160, 0, 640, 480)},
		{name: "empty", in: image.Rectangle{}, want: image.Rectangle{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CenterSquare(tc.in); got != tc.want {
				t.Errorf("CenterSquare(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestInset(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 100, 100), 10); got != image.Rect(10, 10, 90, 90) {
		t.Errorf("Inset = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 100, 100), 0); got != image.Rect(0, 0, 100, 100) {
		t.Errorf("Inset with no padding = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 10, 30), 8); !got.Empty() {
		t.Errorf("Inset larger than rect = %v, want empty", got)
	}
}

func TestFitSquare(t *testing.T) {
	if got := FitSquare(image.Rect(5, 5, 105, 55)); got != image.Rect(5, 5, 55, 55) {
		t.Errorf("FitSquare = %v", got)
	}
}
