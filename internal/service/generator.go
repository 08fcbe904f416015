package service

import (
	"github.com/genvault/genvault-go/internal/crypto"
	"github.com/genvault/genvault-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password with the requested number of letters, digits and symbols.
func (s *GeneratorService) Generate(opts model.GeneratorOptions) (model.GenerateResponse, error) {
	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{Password: password}, nil
}
