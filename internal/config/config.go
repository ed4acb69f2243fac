package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr           string
	DBDriver       string
	DBSource       string
	JWTSecret      string
	TokenTTL       time.Duration
	UploadDir      string
	PlaceholderURL string
}

func Load() Config {
	return Config{
		Addr:      getenv("BRAINJOT_ADDR", ":3000"),
		DBDriver:  getenv("BRAINJOT_DB_DRIVER", "sqlite3"),
		DBSource:  getenv("BRAINJOT_DB_SOURCE", "brainjot.db"),
		JWTSecret: getenv("BRAINJOT_JWT_SECRET", "your-super-secret-key"),
		TokenTTL:  time.Duration(getenvInt("BRAINJOT_TOKEN_TTL_SECONDS", 3600)) * time.Second,
		UploadDir: getenv("BRAINJOT_UPLOAD_DIR", "uploads/videos"),
		PlaceholderURL: getenv("BRAINJOT_PLACEHOLDER_URL",
			"https://test-videos.co.uk/vids/bigbuckbunny/mp4/h264/1080/Big_Buck_Bunny_1080_10s_1MB.mp4"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
