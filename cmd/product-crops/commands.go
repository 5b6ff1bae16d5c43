package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pandadepot/product-crops/internal/batch"
	"github.com/pandadepot/product-crops/internal/catalog"
	"github.com/pandadepot/product-crops/internal/layout"
	"github.com/pandadepot/product-crops/internal/ocr"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Crop every configured product and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
	cmd.Flags().Bool("verify-captions", false, "read each grid caption back and flag mismatches")
	cmd.Flags().String("ocr-lang", "", "tesseract language for caption checks")
	cmd.Flags().String("tessdata", "", "directory of tesseract *.traineddata files")
	cmd.Flags().Float64("min-caption-score", 0, "share of name words a caption must contain")
	return cmd
}

func newOverlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Render calibration sheets with every configured rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.overlay(cmd)
		},
	}
	cmd.Flags().String("overlays", "", "directory for calibration sheets")
	cmd.Flags().Int("workers", 0, "pages rendered in parallel")
	cmd.Flags().Bool("watch", false, "re-render whenever the layout file changes")
	return cmd
}

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check the page table against itself and the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.lint(cmd)
		},
	}
}

// table returns the YAML override when one is configured, else the built-in
// table.
func (a *app) table() (layout.Table, error) {
	if a.cfg.LayoutPath == "" {
		return layout.Default(), nil
	}
	t, err := layout.LoadFile(a.cfg.LayoutPath)
	if err != nil {
		return nil, err
	}
	a.logger.Info("using layout override", zap.String("path", a.cfg.LayoutPath), zap.Int("pages", len(t)))
	return t, nil
}

func (a *app) runner() (*batch.Runner, error) {
	cat, err := catalog.Load(a.cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	t, err := a.table()
	if err != nil {
		return nil, err
	}
	return &batch.Runner{
		Catalog:         cat,
		Table:           t,
		ImagesDir:       a.cfg.ImagesDir,
		OutputDir:       a.cfg.OutputDir,
		Logger:          a.logger,
		MinCaptionScore: a.cfg.MinCaptionScore,
	}, nil
}

func (a *app) run(cmd *cobra.Command) error {
	r, err := a.runner()
	if err != nil {
		return err
	}
	r.Out = cmd.OutOrStdout()

	if a.cfg.VerifyCaptions {
		reader, err := ocr.NewTesseract(a.cfg.TessdataDir, a.cfg.OCRLanguage)
		switch {
		case errors.Is(err, ocr.ErrUnavailable):
			a.logger.Warn("caption checks disabled", zap.Error(err))
		case err != nil:
			return err
		default:
			defer reader.Close()
			r.Captions = reader
		}
	}

	report, err := r.Run(cmd.Context())
	if report != nil {
		if werr := report.WriteSummary(cmd.OutOrStdout()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func (a *app) overlay(cmd *cobra.Command) error {
	r, err := a.runner()
	if err != nil {
		return err
	}
	n, err := r.RenderOverlays(cmd.Context(), a.cfg.OverlayDir, a.cfg.Workers)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d calibration sheets to %s/\n", n, a.cfg.OverlayDir)

	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		return nil
	}
	if a.cfg.LayoutPath == "" {
		return errors.New("--watch needs a layout file (--layout or PRODUCT_CROPS_LAYOUT)")
	}

	err = layout.Watch(cmd.Context(), a.cfg.LayoutPath, 0, a.logger, func(t layout.Table) {
		r.Table = t
		n, err := r.RenderOverlays(cmd.Context(), a.cfg.OverlayDir, a.cfg.Workers)
		if err != nil {
			a.logger.Error("overlay render failed", zap.Error(err))
			return
		}
		a.logger.Info("calibration sheets updated", zap.Int("pages", n))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) lint(cmd *cobra.Command) error {
	cat, err := catalog.Load(a.cfg.CatalogPath)
	if err != nil {
		return err
	}
	t, err := a.table()
	if err != nil {
		return err
	}

	issues := layout.Lint(t, cat.Names())
	out := cmd.OutOrStdout()
	for _, issue := range issues {
		fmt.Fprintln(out, issue)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d layout issues", len(issues))
	}
	fmt.Fprintf(out, "%d pages, %d products configured, no issues\n", len(t), len(t.ConfiguredIDs()))
	return nil
}
