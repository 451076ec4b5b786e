package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	pw, err := password.Generate(optionsFromRequest(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
	}, nil
}

// GenerateBatch produces req.Count independently generated passwords with
// the same configuration.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest) ([]model.GenerateResponse, error) {
	passwords, err := password.GenerateBatch(req.Count, optionsFromRequest(req))
	if err != nil {
		return nil, err
	}

	responses := make([]model.GenerateResponse, len(passwords))
	for i, pw := range passwords {
		responses[i] = model.GenerateResponse{
			Password: pw,
			Length:   len(pw),
		}
	}
	return responses, nil
}

// EstimateStrength reports the estimated strength of an arbitrary password.
func (s *GeneratorService) EstimateStrength(pw string) password.StrengthReport {
	return password.EstimateStrength(pw)
}

// optionsFromRequest maps a request onto generator options, filling every
// field the request leaves unset with its default.
func optionsFromRequest(req model.GenerateRequest) password.Options {
	opts := password.Options{
		Length:         req.Length,
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Digits:         boolOrDefault(req.Digits, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: boolOrDefault(req.ExcludeSimilar, true),
	}

	if opts.Length == 0 {
		opts.Length = password.DefaultOptions().Length
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
