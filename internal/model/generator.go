package model

// GeneratorOptions represents a password generation request: how many
// characters of each class the password should contain.
type GeneratorOptions struct {
	Letters int `json:"letters"`
	Numbers int `json:"numbers"`
	Symbols int `json:"symbols"`
}

// DefaultGeneratorOptions returns the options a fresh form starts with.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{Letters: 8, Numbers: 4, Symbols: 2}
}

// Total returns the requested password length.
func (o GeneratorOptions) Total() int {
	return o.Letters + o.Numbers + o.Symbols
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
}
