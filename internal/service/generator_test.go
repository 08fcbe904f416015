package service

import (
	"errors"
	"testing"

	"github.com/genvault/genvault-go/internal/crypto"
	"github.com/genvault/genvault-go/internal/model"
)

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 14 {
		t.Errorf("expected password length 14, got %d", len(resp.Password))
	}
}

func TestGenerate_LettersOnly(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GeneratorOptions{Letters: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in letters-only password", c)
		}
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GeneratorOptions{Letters: -3})
	if !errors.Is(err, crypto.ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GeneratorOptions{Letters: 200})
	if err == nil {
		t.Fatal("expected error for length too long")
	}
}

func TestGenerate_NothingRequested(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GeneratorOptions{})
	if err == nil {
		t.Fatal("expected error when no characters requested")
	}
}
