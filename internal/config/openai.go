package config

// GetOpenAIKey returns the OpenAI API key, or empty when the backend is not configured
func GetOpenAIKey() string {
	return GetEnvOrDefault("OPENAI_KEY", "")
}

// GetOpenAIModel returns the model used when the OpenAI backend is selected
func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")
}
