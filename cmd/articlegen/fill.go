package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-articlegen/internal/prompt"
	"github.com/goliatone/go-articlegen/pkg/fields"
)

var (
	fillTemplate string
	fillFields   string
	fillMarkdown bool
	fillOut      string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Answer each article region in the terminal and export",
	Long: `Prompts for a template and then for every article region in order.
Answers may be seeded from an existing fields document with --fields.
With --markdown, answers are written in Markdown and converted to HTML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		session, err := newSession(cfg, commandLogger())
		if err != nil {
			return err
		}

		var seed map[string]string
		if fillFields != "" {
			doc, err := fields.LoadDocument(fillFields)
			if err != nil {
				return err
			}
			seed = doc.Regions
			if doc.Format == "markdown" {
				fillMarkdown = true
			}
		}

		filler := prompt.New(prompt.WithFieldMap(session.FieldMap()), prompt.WithMarkdown(fillMarkdown))
		ctx := context.Background()

		id := fillTemplate
		if id == "" {
			id, err = filler.ChooseTemplate(ctx, session.Registry().List(), cfg.DefaultTemplate)
			if err != nil {
				return abortOr(err)
			}
		}
		if _, err := session.LoadTemplate(ctx, id); err != nil {
			return err
		}
		filler.Info(ctx, session.TitleLabel())

		doc, err := filler.Fill(ctx, seed)
		if err != nil {
			return abortOr(err)
		}
		regions, err := doc.Resolve(session.FieldMap())
		if err != nil {
			return err
		}
		if err := session.SetRegions(regions); err != nil {
			return err
		}

		ok, err := filler.Confirm(ctx, "¿Exportar el artículo?", true)
		if err != nil {
			return abortOr(err)
		}
		if !ok {
			return nil
		}
		return exportSession(ctx, session, exportDir(fillOut, cfg.ExportDir))
	},
}

func abortOr(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return nil
	}
	return err
}

func init() {
	fillCmd.Flags().StringVarP(&fillTemplate, "template", "t", "", "template id (prompted when empty)")
	fillCmd.Flags().StringVarP(&fillFields, "fields", "f", "", "JSON or YAML document seeding the answers")
	fillCmd.Flags().BoolVar(&fillMarkdown, "markdown", false, "answer regions in Markdown")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "", "export directory (defaults to export_dir)")
	rootCmd.AddCommand(fillCmd)
}
