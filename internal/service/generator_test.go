package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if strings.ContainsAny(resp.Password, "loIO01") {
		t.Errorf("similar-looking characters should be excluded by default, got %q", resp.Password)
	}
	if resp.Strength != nil {
		t.Error("strength report should not be attached by default")
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:  32,
		Digits:  boolPtr(false),
		Symbols: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in letters-only password", c)
		}
	}
}

func TestGenerate_IncludeSimilar(t *testing.T) {
	svc := NewGeneratorService()

	// With exclusion disabled the similar-looking characters show up again;
	// over 50 long passwords the odds of never seeing one are negligible.
	seen := false
	for i := 0; i < 50 && !seen; i++ {
		resp, err := svc.Generate(model.GenerateRequest{
			Length:         64,
			ExcludeSimilar: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen = strings.ContainsAny(resp.Password, "loIO01")
	}
	if !seen {
		t.Error("expected similar-looking characters to appear when exclusion is disabled")
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
	if !password.IsInvalidParameter(err) {
		t.Error("expected error to classify as invalid parameter")
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, password.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoClasses(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, password.ErrNoClassesEnabled) {
		t.Fatalf("expected ErrNoClassesEnabled, got %v", err)
	}
}

func TestGenerateBatch_Count(t *testing.T) {
	svc := NewGeneratorService()
	responses, err := svc.GenerateBatch(model.GenerateRequest{Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(responses) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(responses))
	}
	for _, resp := range responses {
		if resp.Length != 16 {
			t.Errorf("expected length 16, got %d", resp.Length)
		}
	}
}

func TestGenerateBatch_ZeroCount(t *testing.T) {
	svc := NewGeneratorService()
	responses, err := svc.GenerateBatch(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responses == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(responses) != 0 {
		t.Errorf("expected 0 passwords, got %d", len(responses))
	}
}

func TestGenerateBatch_NegativeCount(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.GenerateBatch(model.GenerateRequest{Count: -3})
	if !errors.Is(err, password.ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
	if !password.IsInvalidParameter(err) {
		t.Error("expected error to classify as invalid parameter")
	}
}

func TestGenerateBatch_InvalidOptions(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.GenerateBatch(model.GenerateRequest{Length: 3, Count: 2})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestEstimateStrength_PassThrough(t *testing.T) {
	svc := NewGeneratorService()
	report := svc.EstimateStrength("aaaaaaaa")
	if report.Score != 47 {
		t.Errorf("expected score 47, got %d", report.Score)
	}
	if report.Strength != "Moderate" {
		t.Errorf("expected label %q, got %q", "Moderate", report.Strength)
	}
}
