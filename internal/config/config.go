package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultSourceURL = "https://web.archive.org/web/20230902185326/https://en.wikipedia.org/wiki/List_of_countries_by_GDP_%28nominal%29"

type Config struct {
	SourceURL  string
	FieldNames []string

	CSVPath   string
	XLSXPath  string
	DBPath    string
	TableName string
	LogPath   string

	HTTPTimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		SourceURL:  getEnv("SOURCE_URL", DefaultSourceURL),
		FieldNames: getEnvList("TABLE_FIELDS", []string{"Country", "GDP_USD_millions"}),

		CSVPath:   getEnv("CSV_PATH", "./Countries_by_GDP.csv"),
		XLSXPath:  getEnv("XLSX_PATH", "./Countries_by_GDP.xlsx"),
		DBPath:    getEnv("DB_PATH", "World_Economies.db"),
		TableName: getEnv("TABLE_NAME", "Countries_by_GDP"),
		LogPath:   getEnv("LOG_PATH", "./etl_project_log.txt"),

		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 0),
	}

	return cfg, nil
}

func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"SOURCE_URL", c.SourceURL},
		{"CSV_PATH", c.CSVPath},
		{"DB_PATH", c.DBPath},
		{"TABLE_NAME", c.TableName},
		{"LOG_PATH", c.LogPath},
	}
	for _, r := range required {
		if err := c.Require(r.name, r.value); err != nil {
			return err
		}
	}
	if len(c.FieldNames) != 2 {
		return fmt.Errorf("TABLE_FIELDS must name exactly 2 fields, got %d", len(c.FieldNames))
	}
	if c.HTTPTimeoutMs < 0 {
		return fmt.Errorf("HTTP_TIMEOUT_MS must not be negative")
	}
	return nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
