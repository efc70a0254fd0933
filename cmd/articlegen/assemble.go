package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/editor"
	"github.com/goliatone/go-articlegen/pkg/fields"
)

var (
	assembleTemplate string
	assembleFields   string
	assembleMode     string
	assembleOut      string
	assembleVariant  string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Fill a template from a JSON/YAML region document",
	Long: `Reads region contents from a fields document and writes the assembled
article. In export mode (the default) the file is named after the article
title and written to --out, which is treated as a directory. Other modes
write to --out as a file, or to stdout when --out is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mode, err := parseAssembleMode(assembleMode)
		if err != nil {
			return err
		}
		if assembleVariant != "" {
			cfg.Variant = assembleVariant
		}

		doc, err := fields.LoadDocument(assembleFields)
		if err != nil {
			return err
		}
		if doc.Variant != "" && assembleVariant == "" {
			cfg.Variant = doc.Variant
		}

		session, err := newSession(cfg, commandLogger())
		if err != nil {
			return err
		}
		regions, err := doc.Resolve(session.FieldMap())
		if err != nil {
			return err
		}

		ctx := context.Background()
		if _, err := session.LoadTemplate(ctx, templateID(assembleTemplate, cfg)); err != nil {
			return fmt.Errorf("%s: %w", editor.UserMessage(err), err)
		}
		if err := session.SetRegions(regions); err != nil {
			return err
		}

		if mode == assemble.ModeExport {
			return exportSession(ctx, session, exportDir(assembleOut, cfg.ExportDir))
		}

		out, err := session.Render(ctx, mode)
		if err != nil {
			return err
		}
		if assembleOut == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		if err := os.WriteFile(assembleOut, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", assembleOut, err)
		}
		fmt.Fprintf(os.Stderr, "Article written to %s\n", assembleOut)
		return nil
	},
}

func parseAssembleMode(raw string) (assemble.Mode, error) {
	if raw == "" {
		return assemble.ModeExport, nil
	}
	return assemble.ParseMode(raw)
}

func exportDir(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured != "" {
		return configured
	}
	return "."
}

func exportSession(ctx context.Context, session *editor.Session, dir string) error {
	artifact, err := session.Export(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", editor.UserMessage(err), err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path, err := artifact.WriteFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Article exported to %s\n", filepath.Clean(path))
	return nil
}

func init() {
	assembleCmd.Flags().StringVarP(&assembleTemplate, "template", "t", "", "template id (defaults to default_template)")
	assembleCmd.Flags().StringVarP(&assembleFields, "fields", "f", "", "JSON or YAML region document")
	assembleCmd.Flags().StringVarP(&assembleMode, "mode", "m", "", "edit, preview or export (default export)")
	assembleCmd.Flags().StringVarP(&assembleOut, "out", "o", "", "output file, or export directory in export mode")
	assembleCmd.Flags().StringVar(&assembleVariant, "variant", "", "light or dark")
	assembleCmd.MarkFlagRequired("fields")
	rootCmd.AddCommand(assembleCmd)
}
