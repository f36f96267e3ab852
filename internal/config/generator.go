package config

// Backend selection values for GENERATOR_BACKEND
const (
	BackendLocal  = "local"
	BackendOpenAI = "openai"
)

var (
	// GeneratorURL is the address of the local text-generation endpoint.
	// Default to the conventional local serving address if not set in environment
	GeneratorURL = GetEnvOrDefault("GENERATOR_URL", "http://127.0.0.1:11434/api/generate")
)

// GetGeneratorURL returns the configured remote completion endpoint
func GetGeneratorURL() string {
	return GeneratorURL
}

// SetGeneratorURL temporarily changes the generator URL and returns a function to restore it
// This is primarily used for testing
func SetGeneratorURL(url string) func() {
	previous := GeneratorURL
	GeneratorURL = url

	return func() {
		GeneratorURL = previous
	}
}

// GetGeneratorBackend returns which generation backend to use
func GetGeneratorBackend() string {
	return GetEnvOrDefault("GENERATOR_BACKEND", BackendLocal)
}
