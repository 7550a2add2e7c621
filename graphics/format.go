package graphics

// AttachmentSlot is one logical output of a render target
type AttachmentSlot int

const (
	SlotColor0 AttachmentSlot = iota
	SlotColor1
	SlotColor2
	SlotColor3
	SlotDepth AttachmentSlot = 100
)

func (s AttachmentSlot) String() string {
	switch s {
	case SlotColor0:
		return "Color0"
	case SlotColor1:
		return "Color1"
	case SlotColor2:
		return "Color2"
	case SlotColor3:
		return "Color3"
	case SlotDepth:
		return "Depth"
	}
	return "Unknown"
}

// IsColor reports whether the slot is one of the color outputs
func (s AttachmentSlot) IsColor() bool {
	return s >= SlotColor0 && s <= SlotColor3
}

// TargetFormat is the pixel format of a render target attachment
type TargetFormat int

const (
	// ColorRGBA8 is 8 bits per component color
	ColorRGBA8 TargetFormat = iota
	// ColorRGB10 is 10 bits per component color, for normal/emissive data
	ColorRGB10
	// Depth32 is a 32-bit pure depth format, texture-backed and sampleable
	Depth32
	// Depth24Stencil8 is a combined depth-stencil renderbuffer format.
	// It cannot back a shader-readable attachment.
	Depth24Stencil8
)

func (f TargetFormat) String() string {
	switch f {
	case ColorRGBA8:
		return "ColorRGBA8"
	case ColorRGB10:
		return "ColorRGB10"
	case Depth32:
		return "Depth32"
	case Depth24Stencil8:
		return "Depth24Stencil8"
	}
	return "Unknown"
}

// IsDepth reports whether the format carries depth data
func (f TargetFormat) IsDepth() bool {
	return f == Depth32 || f == Depth24Stencil8
}

// TextureBacked reports whether the format can back a texture that
// shader code samples later
func (f TargetFormat) TextureBacked() bool {
	return f != Depth24Stencil8
}
