package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pandadepot/product-crops/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries the resolved configuration and logger between the root
// command's hooks and the subcommands.
type app struct {
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "product-crops",
		Short: "Crop catalog product photos out of scanned catalog pages",
		Long: `product-crops cuts one PNG per product out of the catalog page images,
using the per-page coordinate table, and names each file {id}_{slug}.png.

Run without a subcommand to crop every configured page.

Environment variables (a .env file is read first):
  PRODUCT_CROPS_IMAGES_DIR       page images (page-NN.png)
  PRODUCT_CROPS_CATALOG          catalog JSON
  PRODUCT_CROPS_OUTPUT_DIR       where product images are written
  PRODUCT_CROPS_LAYOUT           optional YAML page table override
  PRODUCT_CROPS_OVERLAY_DIR      calibration sheet directory
  PRODUCT_CROPS_WORKERS          overlay rendering goroutines
  PRODUCT_CROPS_LOG_LEVEL        debug, info, warn, error
  PRODUCT_CROPS_VERIFY_CAPTIONS  read grid captions back with tesseract
  PRODUCT_CROPS_OCR_LANGUAGE     tesseract language
  PRODUCT_CROPS_TESSDATA         directory of *.traineddata files
  PRODUCT_CROPS_MIN_CAPTION_SCORE  caption score below which a crop is flagged`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to read before the environment")
	flags.String("images", "", "page images directory")
	flags.String("catalog", "", "catalog JSON path")
	flags.String("output", "", "output directory for product images")
	flags.String("layout", "", "YAML page table replacing the built-in one")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	runCmd := newRunCmd(a)
	root.RunE = runCmd.RunE
	root.Flags().AddFlagSet(runCmd.Flags())

	root.AddCommand(runCmd, newOverlayCmd(a), newLintCmd(a), newVersionCmd())
	return root
}

// setup resolves configuration (defaults, .env, environment, then flags) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", a.envFile, err)
	}

	overrides := map[string]*string{
		"images":    &cfg.ImagesDir,
		"catalog":   &cfg.CatalogPath,
		"output":    &cfg.OutputDir,
		"layout":    &cfg.LayoutPath,
		"log-level": &cfg.LogLevel,
		"overlays":  &cfg.OverlayDir,
		"ocr-lang":  &cfg.OCRLanguage,
		"tessdata":  &cfg.TessdataDir,
	}
	for name, dst := range overrides {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if f := cmd.Flags().Lookup("verify-captions"); f != nil && f.Changed {
		cfg.VerifyCaptions, _ = cmd.Flags().GetBool("verify-captions")
	}
	if f := cmd.Flags().Lookup("min-caption-score"); f != nil && f.Changed {
		cfg.MinCaptionScore, _ = cmd.Flags().GetFloat64("min-caption-score")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// newLogger builds a console logger on stderr; stdout carries the report.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Needs neither configuration nor a logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "product-crops %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
