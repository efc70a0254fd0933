// Package prompt fills article regions from an interactive terminal session.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/registry"
)

// Filler asks for template choice and region contents.
type Filler struct {
	driver   PromptDriver
	fieldMap fields.Map
	markdown bool
}

// Option configures a Filler.
type Option func(*Filler)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithFieldMap replaces the default field map.
func WithFieldMap(m fields.Map) Option {
	return func(f *Filler) {
		if len(m) > 0 {
			f.fieldMap = m
		}
	}
}

// WithMarkdown treats answers as Markdown. The resulting document is
// converted when resolved.
func WithMarkdown(enabled bool) Option {
	return func(f *Filler) {
		f.markdown = enabled
	}
}

// New creates a Filler backed by survey unless a driver is supplied.
func New(options ...Option) *Filler {
	f := &Filler{fieldMap: fields.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(nil)
	}
	return f
}

// ChooseTemplate lists the registry entries and returns the chosen id.
// current preselects an entry when it exists.
func (f *Filler) ChooseTemplate(ctx context.Context, entries []registry.Entry, current string) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoTemplates
	}
	options := make([]string, len(entries))
	defaultIndex := 0
	for i, entry := range entries {
		options[i] = entry.Name
		if entry.ID == current {
			defaultIndex = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Plantilla",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(entries) {
		return "", fmt.Errorf("prompt: invalid template choice %d", idx)
	}
	return entries[idx].ID, nil
}

// Fill asks for every region of the field map in order. defaults seeds
// each answer; empty answers are left out of the document. The title is
// required.
func (f *Filler) Fill(ctx context.Context, defaults map[string]string) (fields.Document, error) {
	doc := fields.Document{Format: "html", Regions: make(map[string]string, len(f.fieldMap))}
	if f.markdown {
		doc.Format = "markdown"
	}

	for _, field := range f.fieldMap {
		answer, err := f.ask(ctx, field, defaults[field.Region])
		if err != nil {
			return fields.Document{}, fmt.Errorf("prompt: region %q: %w", field.Region, err)
		}
		if strings.TrimSpace(answer) == "" {
			continue
		}
		doc.Regions[field.Region] = answer
	}
	return doc, nil
}

func (f *Filler) ask(ctx context.Context, field fields.Field, def string) (string, error) {
	message := fmt.Sprintf("%s (%s)", field.Region, field.Token)
	switch {
	case field.Token == fields.TokenTitle:
		return f.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   def,
			Validator: requireText,
		})
	case field.Format == fields.FormatText:
		return f.driver.Input(ctx, InputConfig{Message: message, Default: def})
	default:
		help := "HTML"
		if f.markdown {
			help = "Markdown"
		}
		return f.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: def, Help: help})
	}
}

func requireText(s string) error {
	if strings.TrimSpace(fields.TextContent(s)) == "" {
		return export.ErrTitleRequired
	}
	return nil
}

// Confirm asks a yes/no question.
func (f *Filler) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return f.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def})
}

// Info prints a message through the driver.
func (f *Filler) Info(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, msg)
}
