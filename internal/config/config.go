package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default model identifiers per provider
const (
	DefaultOpenAIAuthorModel    = "text-davinci-003"
	DefaultOpenAIRecommendModel = "text-davinci-002"
	DefaultGeminiAuthorModel    = "gemini-2.5-flash-lite"
	DefaultGeminiRecommendModel = "gemini-2.5-flash"

	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultOpenAITimeout = 60 * time.Second

	DefaultFavoritesPath = "data/favorites.json"
)

// Config is read once at startup and passed explicitly to every constructor
type Config struct {
	Env            string
	Port           string
	AllowedOrigins []string

	LogLevel  string
	LogFormat string

	Provider      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAITimeout time.Duration
	GeminiAPIKey  string
	GeminiBaseURL string

	AuthorModel    string
	RecommendModel string

	// NormalizeRecommendations enables stripping of list prefixes and
	// dropping of lines that do not read "{title} by {author}".
	NormalizeRecommendations bool

	FavoritesPath string
}

// Load reads configuration from the environment, after best-effort loading of
// .env.local and .env. It fails when the selected provider has no credential.
func Load() (*Config, error) {
	LoadEnvFiles()
	return FromEnv()
}

// LoadEnvFiles loads .env.local then .env when present. Existing variables win.
func LoadEnvFiles() {
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}
}

// FromEnv builds a Config from the current environment without touching env files
func FromEnv() (*Config, error) {
	env := normalizeEnv(getEnv("ENV", "development"))

	cfg := &Config{
		Env:                      env,
		Port:                     getEnv("PORT", "8080"),
		AllowedOrigins:           allowedOrigins(env),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", defaultLogFormat(env)),
		Provider:                 strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", ProviderOpenAI))),
		OpenAIAPIKey:             strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:            strings.TrimRight(getEnv("OPENAI_BASE_URL", DefaultOpenAIBaseURL), "/"),
		OpenAITimeout:            getSeconds("OPENAI_TIMEOUT_SECONDS", DefaultOpenAITimeout),
		GeminiAPIKey:             strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiBaseURL:            strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		NormalizeRecommendations: getBool("NORMALIZE_RECOMMENDATIONS", false),
		FavoritesPath:            FavoritesPath(),
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		cfg.AuthorModel = getEnv("AUTHOR_MODEL", DefaultOpenAIAuthorModel)
		cfg.RecommendModel = getEnv("RECOMMEND_MODEL", DefaultOpenAIRecommendModel)
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		cfg.AuthorModel = getEnv("AUTHOR_MODEL", DefaultGeminiAuthorModel)
		cfg.RecommendModel = getEnv("RECOMMEND_MODEL", DefaultGeminiRecommendModel)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want %s or %s)", cfg.Provider, ProviderOpenAI, ProviderGemini)
	}

	return cfg, nil
}

// FavoritesPath resolves the favorites file location without requiring a provider credential
func FavoritesPath() string {
	return getEnv("FAVORITES_PATH", DefaultFavoritesPath)
}

// IsProduction reports whether the server should run gin in release mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func allowedOrigins(env string) []string {
	var origins []string
	if env != "production" {
		origins = append(origins, "http://localhost:3000")
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		origins = append(origins, splitAndTrim(extra)...)
	}
	return origins
}

func defaultLogFormat(env string) string {
	if env == "production" {
		return "json"
	}
	return "console"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	default:
		return "development"
	}
}
