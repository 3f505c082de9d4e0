package config

import (
	"os"
	"time"
)

type Config struct {
	ProjectID    string
	Region       string
	LogLevel     string
	Port         string
	VertexModel  string
	NarrativeTTL time.Duration
}

func New() *Config {
	return &Config{
		ProjectID:    os.Getenv("PROJECTID"),
		Region:       os.Getenv("REGION"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		Port:         getPort(os.Getenv("PORT")),
		VertexModel:  os.Getenv("VERTEXMODEL"),
		NarrativeTTL: getNarrativeTTL(os.Getenv("NARRATIVETTL")),
	}
}

func getPort(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}

func getNarrativeTTL(ttl string) time.Duration {
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}
