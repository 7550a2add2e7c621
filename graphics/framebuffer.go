package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrNotValidated is returned when a frame buffer is used before Validate
	ErrNotValidated = errors.New("graphics: frame buffer used before validation")

	// ErrIncompatibleAttachment is returned when a shader-readable depth
	// attachment is declared with a combined depth-stencil format
	ErrIncompatibleAttachment = errors.New("graphics: shader-readable depth attachment requires a texture-backed depth format")

	// ErrDuplicateSlot is returned when two attachments claim the same slot
	ErrDuplicateSlot = errors.New("graphics: duplicate attachment slot")

	// ErrNoAttachments is returned when validating an empty frame buffer
	ErrNoAttachments = errors.New("graphics: frame buffer has no attachments")

	// ErrValidated is returned when attachments are added after validation
	ErrValidated = errors.New("graphics: frame buffer already validated")
)

// AttachmentDesc declares one logical output slot of a frame buffer
type AttachmentDesc struct {
	Slot AttachmentSlot
	// Format is the pixel format of the attachment
	Format TargetFormat
	// ShaderReadable requests a texture-backed attachment that shader
	// code can sample in a later pass
	ShaderReadable bool
}

// TargetTexture is the texture handle materialized for a
// shader-readable attachment once the buffer validates
type TargetTexture struct {
	Slot   AttachmentSlot
	Format TargetFormat
	Width  int
	Height int
}

// FrameBuffer assembles a multi-attachment render target from a
// declarative list of attachment descriptors. Attachments are added in
// order, then the buffer must be validated before any use.
type FrameBuffer struct {
	width   int
	height  int
	samples int

	attachments []AttachmentDesc
	textures    map[AttachmentSlot]*TargetTexture

	validated bool
	debugName string
}

// NewFrameBuffer creates an empty frame buffer of the given dimensions.
// An optional sample count requests multi-sample buffering for targets
// used in on-screen presentation; it defaults to 1.
func NewFrameBuffer(width, height int, samples ...int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("graphics: frame buffer dimensions must be positive, got %dx%d", width, height)
	}
	s := 1
	if len(samples) > 0 {
		if samples[0] < 1 {
			return nil, fmt.Errorf("graphics: sample count must be at least 1, got %d", samples[0])
		}
		s = samples[0]
	}
	return &FrameBuffer{
		width:   width,
		height:  height,
		samples: s,
	}, nil
}

// AddAttachment appends an attachment descriptor. Attachments cannot be
// added once the buffer has validated.
func (fb *FrameBuffer) AddAttachment(desc AttachmentDesc) error {
	if fb.validated {
		return ErrValidated
	}
	fb.attachments = append(fb.attachments, desc)
	return nil
}

// Validate checks attachment completeness and slot consistency and
// materializes textures for shader-readable attachments. It must be
// called before the buffer is used; validation failures are programming
// errors in the composition, fatal to the build step that hit them.
func (fb *FrameBuffer) Validate() error {
	if fb.validated {
		return nil
	}
	if len(fb.attachments) == 0 {
		return ErrNoAttachments
	}

	seen := make(map[AttachmentSlot]bool, len(fb.attachments))
	for _, a := range fb.attachments {
		if seen[a.Slot] {
			return fmt.Errorf("%w: %s", ErrDuplicateSlot, a.Slot)
		}
		seen[a.Slot] = true

		if a.Slot == SlotDepth && !a.Format.IsDepth() {
			return fmt.Errorf("graphics: depth slot declared with color format %s", a.Format)
		}
		if a.Slot.IsColor() && a.Format.IsDepth() {
			return fmt.Errorf("graphics: color slot %s declared with depth format %s", a.Slot, a.Format)
		}
		if a.ShaderReadable && !a.Format.TextureBacked() {
			return fmt.Errorf("%w: slot %s format %s", ErrIncompatibleAttachment, a.Slot, a.Format)
		}
	}

	fb.textures = make(map[AttachmentSlot]*TargetTexture)
	for _, a := range fb.attachments {
		if a.ShaderReadable {
			fb.textures[a.Slot] = &TargetTexture{
				Slot:   a.Slot,
				Format: a.Format,
				Width:  fb.width,
				Height: fb.height,
			}
		}
	}

	fb.validated = true
	return nil
}

// Validated reports whether Validate has completed successfully
func (fb *FrameBuffer) Validated() bool {
	return fb.validated
}

// Texture returns the materialized texture for a shader-readable slot.
// Using the buffer before validation is a precondition violation.
func (fb *FrameBuffer) Texture(slot AttachmentSlot) (*TargetTexture, error) {
	if !fb.validated {
		return nil, ErrNotValidated
	}
	tex, ok := fb.textures[slot]
	if !ok {
		return nil, fmt.Errorf("graphics: no shader-readable attachment at slot %s", slot)
	}
	return tex, nil
}

// Clone produces a second buffer with identical attachments and fresh
// texture handles, for double-buffered front/back presentation. Only a
// validated buffer can be cloned; the clone is validated too.
func (fb *FrameBuffer) Clone() (*FrameBuffer, error) {
	if !fb.validated {
		return nil, ErrNotValidated
	}
	clone := &FrameBuffer{
		width:     fb.width,
		height:    fb.height,
		samples:   fb.samples,
		debugName: fb.debugName,
	}
	clone.attachments = append([]AttachmentDesc(nil), fb.attachments...)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return clone, nil
}

// SetDebugName attaches a human-readable tag for diagnostics
func (fb *FrameBuffer) SetDebugName(name string) {
	fb.debugName = name
}

// DebugName returns the diagnostic tag, empty if unset
func (fb *FrameBuffer) DebugName() string {
	return fb.debugName
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// Samples returns the multi-sample count, 1 for non-MSAA
func (fb *FrameBuffer) Samples() int { return fb.samples }

// Attachments returns a copy of the attachment descriptors in
// declaration order
func (fb *FrameBuffer) Attachments() []AttachmentDesc {
	return append([]AttachmentDesc(nil), fb.attachments...)
}
