package layout

import "image"

// Inset shrinks rect by paddingPx on all sides. A rect too small for the
// padding collapses to its centre.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	rect = Normalize(rect)
	if rect.Dx() <= 2*paddingPx || rect.Dy() <= 2*paddingPx {
		c := Center(rect)
		return image.Rectangle{Min: c, Max: c}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns the middle point of rect, rounded towards Min.
func Center(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// FitSquare returns the largest square that fits into rect, anchored at
// its top-left corner.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	side := min(rect.Dx(), rect.Dy())
	return image.Rectangle{Min: rect.Min, Max: rect.Min.Add(image.Pt(side, side))}
}

// CenterSquare returns the largest square that fits into rect, centred on it.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	square := FitSquare(rect)
	dx := (rect.Dx() - square.Dx()) / 2
	dy := (rect.Dy() - square.Dy()) / 2
	return square.Add(image.Pt(dx, dy))
}
