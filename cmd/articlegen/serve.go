package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-articlegen"
	"github.com/goliatone/go-articlegen/internal/server"
	"github.com/goliatone/go-articlegen/internal/watch"
	"github.com/goliatone/go-articlegen/pkg/editor"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local article editor",
	Long: `Starts an HTTP server exposing the editable article page, the live
preview, HTML export and the editing API. The default template is loaded on
start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serveWatch
		}
		if cfg.Watch && cfg.TemplatesDir == "" {
			return fmt.Errorf("--watch requires templates_dir")
		}

		logger := newLogger()
		session, err := newSession(cfg, logger)
		if err != nil {
			return fmt.Errorf("creating session: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if _, err := session.LoadTemplate(ctx, cfg.DefaultTemplate, editor.RefreshPreview()); err != nil {
			logger.Printf("%s", editor.UserMessage(err))
		}

		if cfg.Watch {
			w, err := watch.New(cfg.TemplatesDir, watch.SessionReloader(session, cfg.RequestTimeout()), watch.WithDebug(verbose))
			if err != nil {
				return fmt.Errorf("watching %s: %w", cfg.TemplatesDir, err)
			}
			w.Start()
			defer w.Stop()
			logger.Printf("watching %s for template changes", cfg.TemplatesDir)
		}

		srv := server.New(server.Config{
			Addr:        cfg.Addr,
			CORSOrigins: cfg.CORSOrigins,
			TemplatesFS: staticTemplatesFS(cfg),
			AssetsFS:    articlegen.EditorAssetsFS(),
		}, session, logger)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload templates when files in templates_dir change")
	rootCmd.AddCommand(serveCmd)
}
