package dial

// PostProcess describes whole-image transforms applied after the clock
// is composited and downsampled. The order is fixed: horizontal flip,
// then rotation, then transpose. Rotation by a non-right angle expands
// the canvas to the rotated bounding box with transparent corners, so
// the output may be larger than the configured size.
type PostProcess struct {
	FlipHorizontal bool
	Rotate         float64
	Transpose      bool
}

func (pp PostProcess) apply(p *Pixmap) *Pixmap {
	if pp.FlipHorizontal {
		p = flipHorizontal(p)
	}
	if pp.Rotate != 0 {
		p = rotate(p, pp.Rotate)
	}
	if pp.Transpose {
		p = transpose(p)
	}
	return p
}
