package config

import "os"

// GetEnv reads an environment variable, returning "" when unset.
// Callers that cannot run without a value should fail loudly themselves.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// MustGetEnv reads an environment variable and aborts startup when missing.
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		Logger.Fatal("Required environment variable is not set: " + key)
	}
	return value
}

// GetGeminiAPIKey returns the Gemini API key used for alt-text generation.
func GetGeminiAPIKey() string {
	key := GetEnv("GEMINI_API_KEY")
	if key == "" {
		Logger.Fatal("GEMINI_API_KEY is required in .env")
	}
	return key
}
