package graphics

import (
	"errors"
	"testing"
)

func TestDepthStencilShaderReadableFailsValidation(t *testing.T) {
	fb, err := NewFrameBuffer(1024, 1024)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	if err := fb.AddAttachment(AttachmentDesc{
		Slot:           SlotDepth,
		Format:         Depth24Stencil8,
		ShaderReadable: true,
	}); err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}

	err = fb.Validate()
	if !errors.Is(err, ErrIncompatibleAttachment) {
		t.Errorf("Expected ErrIncompatibleAttachment, got %v", err)
	}
	if fb.Validated() {
		t.Errorf("Buffer must not report validated after failed validation")
	}
}

func TestPureDepthShaderReadablePassesValidation(t *testing.T) {
	fb, err := NewFrameBuffer(1024, 1024)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	if err := fb.AddAttachment(AttachmentDesc{
		Slot:           SlotDepth,
		Format:         Depth32,
		ShaderReadable: true,
	}); err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}

	if err := fb.Validate(); err != nil {
		t.Fatalf("Expected pure depth format to validate, got %v", err)
	}

	tex, err := fb.Texture(SlotDepth)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if tex.Width != 1024 || tex.Height != 1024 {
		t.Errorf("Expected 1024x1024 depth texture, got %dx%d", tex.Width, tex.Height)
	}
}

func TestDuplicateSlotFailsValidation(t *testing.T) {
	fb, _ := NewFrameBuffer(64, 64)
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: ColorRGBA8, ShaderReadable: true})
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: ColorRGB10, ShaderReadable: true})

	if err := fb.Validate(); !errors.Is(err, ErrDuplicateSlot) {
		t.Errorf("Expected ErrDuplicateSlot, got %v", err)
	}
}

func TestSlotFormatMismatchFailsValidation(t *testing.T) {
	fb, _ := NewFrameBuffer(64, 64)
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: Depth32})
	if err := fb.Validate(); err == nil {
		t.Errorf("Expected depth format on color slot to fail validation")
	}

	fb2, _ := NewFrameBuffer(64, 64)
	fb2.AddAttachment(AttachmentDesc{Slot: SlotDepth, Format: ColorRGBA8})
	if err := fb2.Validate(); err == nil {
		t.Errorf("Expected color format on depth slot to fail validation")
	}
}

func TestEmptyBufferFailsValidation(t *testing.T) {
	fb, _ := NewFrameBuffer(64, 64)
	if err := fb.Validate(); !errors.Is(err, ErrNoAttachments) {
		t.Errorf("Expected ErrNoAttachments, got %v", err)
	}
}

func TestUseBeforeValidationIsError(t *testing.T) {
	fb, _ := NewFrameBuffer(64, 64)
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: ColorRGBA8, ShaderReadable: true})

	if _, err := fb.Texture(SlotColor0); !errors.Is(err, ErrNotValidated) {
		t.Errorf("Expected ErrNotValidated from Texture before Validate, got %v", err)
	}
	if _, err := fb.Clone(); !errors.Is(err, ErrNotValidated) {
		t.Errorf("Expected ErrNotValidated from Clone before Validate, got %v", err)
	}
}

func TestAddAttachmentAfterValidationIsError(t *testing.T) {
	fb, _ := NewFrameBuffer(64, 64)
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: ColorRGBA8})
	if err := fb.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	err := fb.AddAttachment(AttachmentDesc{Slot: SlotColor1, Format: ColorRGBA8})
	if !errors.Is(err, ErrValidated) {
		t.Errorf("Expected ErrValidated, got %v", err)
	}
}

func TestCloneProducesValidatedCopyWithFreshTextures(t *testing.T) {
	fb, _ := NewFrameBuffer(800, 600, 4)
	fb.AddAttachment(AttachmentDesc{Slot: SlotColor0, Format: ColorRGBA8, ShaderReadable: true})
	fb.AddAttachment(AttachmentDesc{Slot: SlotDepth, Format: Depth32, ShaderReadable: true})
	if err := fb.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	fb.SetDebugName("MainBuffer")

	clone, err := fb.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if !clone.Validated() {
		t.Errorf("Expected clone to be validated")
	}
	if clone.Width() != 800 || clone.Height() != 600 || clone.Samples() != 4 {
		t.Errorf("Clone geometry mismatch: %dx%d samples %d", clone.Width(), clone.Height(), clone.Samples())
	}
	if clone.DebugName() != "MainBuffer" {
		t.Errorf("Expected clone to carry debug name, got %q", clone.DebugName())
	}

	orig, _ := fb.Texture(SlotColor0)
	copied, _ := clone.Texture(SlotColor0)
	if orig == copied {
		t.Errorf("Expected clone to materialize fresh texture handles")
	}
}

func TestInvalidDimensionsRejected(t *testing.T) {
	if _, err := NewFrameBuffer(0, 100); err == nil {
		t.Errorf("Expected zero width to be rejected")
	}
	if _, err := NewFrameBuffer(100, -1); err == nil {
		t.Errorf("Expected negative height to be rejected")
	}
	if _, err := NewFrameBuffer(100, 100, 0); err == nil {
		t.Errorf("Expected zero sample count to be rejected")
	}
}
