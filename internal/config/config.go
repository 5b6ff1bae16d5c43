// Package config resolves the cropper's paths and options.
//
// Values come from, in increasing precedence: built-in defaults, a .env file,
// PRODUCT_CROPS_* environment variables, and command-line flags (applied by
// the caller). With nothing set, the defaults reproduce the project layout the
// tool was written for.
package config

import (
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "PRODUCT_CROPS_"

// Defaults match the site repository layout.
const (
	DefaultImagesDir   = "src/assets/images"
	DefaultCatalogPath = "src/data/catalog.json"
	DefaultOutputDir   = "src/assets/products"
	DefaultOverlayDir  = "calibration"
)

// Config holds every setting the commands need. Load fills it; flags may then
// overwrite fields before Validate is called.
type Config struct {
	ImagesDir   string
	CatalogPath string
	OutputDir   string

	// LayoutPath optionally replaces the compiled-in page table with a YAML file.
	LayoutPath string

	OverlayDir string
	Workers    int

	LogLevel string

	VerifyCaptions  bool
	OCRLanguage     string
	MinCaptionScore float64

	// TessdataDir points Tesseract at a directory of *.traineddata files.
	// Empty uses the system installation.
	TessdataDir string
}

// Load reads an optional .env file at envFile (ignored when missing) and then
// the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		ImagesDir:       getEnv("IMAGES_DIR", DefaultImagesDir),
		CatalogPath:     getEnv("CATALOG", DefaultCatalogPath),
		OutputDir:       getEnv("OUTPUT_DIR", DefaultOutputDir),
		LayoutPath:      getEnv("LAYOUT", ""),
		OverlayDir:      getEnv("OVERLAY_DIR", DefaultOverlayDir),
		Workers:         getEnvInt("WORKERS", runtime.NumCPU()),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		VerifyCaptions:  getEnvBool("VERIFY_CAPTIONS", false),
		OCRLanguage:     getEnv("OCR_LANGUAGE", "eng"),
		MinCaptionScore: getEnvFloat("MIN_CAPTION_SCORE", 0.5),
		TessdataDir:     getEnv("TESSDATA", ""),
	}

	return cfg.normalize(), nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch {
	case c.ImagesDir == "":
		return errors.New("images directory is required")
	case c.CatalogPath == "":
		return errors.New("catalog path is required")
	case c.OutputDir == "":
		return errors.New("output directory is required")
	case c.MinCaptionScore < 0 || c.MinCaptionScore > 1:
		return errors.New("minimum caption score must be between 0 and 1")
	}
	return nil
}

func (c Config) normalize() Config {
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(envPrefix + key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(envPrefix + key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(envPrefix + key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
