package norgfmt

import (
	"bytes"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsNUL(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := bytes.Repeat([]byte{'a', 0x01}, minBinarySample)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	data := []byte("* Heading\n\tsome text\r\nand more\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateInputAcceptsShortControlBurst(t *testing.T) {
	// Below the sampling threshold a stray control byte is tolerated.
	data := []byte{'h', 'i', 0x01}
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
