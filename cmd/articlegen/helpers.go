package main

import (
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-articlegen"
	"github.com/goliatone/go-articlegen/internal/config"
	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/editor"
	"github.com/goliatone/go-articlegen/pkg/fields"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
	"github.com/goliatone/go-articlegen/pkg/registry"
)

// contentFS is the root that registry paths such as
// "/templates/template1.css" resolve against: templates_dir when set,
// otherwise the embedded templates.
func contentFS(cfg *config.Config) fs.FS {
	if cfg.TemplatesDir != "" {
		return os.DirFS(cfg.TemplatesDir)
	}
	return articlegen.EmbeddedTemplates()
}

// staticTemplatesFS is served under /templates.
func staticTemplatesFS(cfg *config.Config) fs.FS {
	if cfg.TemplatesDir == "" {
		return articlegen.TemplatesFS()
	}
	root := contentFS(cfg)
	if info, err := fs.Stat(root, "templates"); err == nil && info.IsDir() {
		if sub, err := fs.Sub(root, "templates"); err == nil {
			return sub
		}
	}
	return root
}

func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.RegistryFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(cfg.RegistryFile)
}

func newLoader(cfg *config.Config) pkgloader.Loader {
	opts := []pkgloader.Option{pkgloader.WithFileSystem(contentFS(cfg))}
	if cfg.AllowHTTP {
		opts = append(opts, pkgloader.WithHTTPFallback(cfg.RequestTimeout()))
	}
	return articlegen.NewLoader(opts...)
}

// sessionOptions translates the process config into editor options.
func sessionOptions(cfg *config.Config, logger *log.Logger) ([]editor.Option, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}

	assembleOpts := []assemble.Option{
		assemble.WithWrapperDir(cfg.WrapperDir),
		assemble.WithWrapperExtension(cfg.WrapperExt),
		assemble.WithWrapperData(map[string]any{"app_title": cfg.AppTitle}),
	}
	if cfg.Lang != "" {
		assembleOpts = append(assembleOpts, assemble.WithLanguage(cfg.Lang))
	}
	asm, err := assemble.New(assembleOpts...)
	if err != nil {
		return nil, err
	}

	opts := []editor.Option{
		editor.WithRegistry(reg),
		editor.WithAssembler(asm),
		editor.WithVariant(cfg.Variant),
		editor.WithLogger(logger),
	}
	if cfg.AppTitle != "" {
		opts = append(opts, editor.WithAppTitle(cfg.AppTitle))
	}
	if cfg.Sanitize {
		opts = append(opts, editor.WithSanitizer(fields.SanitizeHTML))
	}
	return opts, nil
}

func newSession(cfg *config.Config, logger *log.Logger) (*editor.Session, error) {
	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	return articlegen.NewSession(newLoader(cfg), opts...)
}

func commandLogger() *log.Logger {
	if verbose {
		return newLogger()
	}
	return log.New(io.Discard, "", 0)
}

func templateID(flagValue string, cfg *config.Config) string {
	if id := strings.TrimSpace(flagValue); id != "" {
		return id
	}
	return cfg.DefaultTemplate
}
