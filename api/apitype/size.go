package apitype

import "image"

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// Fits reports whether the size fits inside the target without scaling
func (s Size) Fits(target Size) bool {
	return s.width <= target.width && s.height <= target.height
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

func (s Size) ScaleToFit(target Size) Size {
	width, height := ScaleToFit(s.width, s.height, target.width, target.height)
	return SizeOf(width, height)
}
