package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-articlegen/internal/prompt"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/registry"
)

type stubDriver struct {
	answers  map[string]string
	selected int
	asked    []string
	textArea []string
	failOn   string
}

func (s *stubDriver) answer(msg string) (string, error) {
	s.asked = append(s.asked, msg)
	if msg == s.failOn {
		return "", prompt.ErrAborted
	}
	return s.answers[msg], nil
}

func (s *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	out, err := s.answer(cfg.Message)
	if err != nil {
		return "", err
	}
	if cfg.Validator != nil {
		if verr := cfg.Validator(out); verr != nil {
			return "", verr
		}
	}
	return out, nil
}

func (s *stubDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return true, nil
}

func (s *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	s.asked = append(s.asked, cfg.Message)
	return s.selected, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	s.textArea = append(s.textArea, cfg.Message)
	return s.answer(cfg.Message)
}

func (s *stubDriver) Info(context.Context, string) error { return nil }

func smallMap() fields.Map {
	return fields.Map{
		{Token: fields.TokenTitle, Region: fields.RegionTitle, Format: fields.FormatHTML},
		{Token: fields.TokenDOI, Region: "meta-doi", Format: fields.FormatText},
		{Token: fields.TokenBody, Region: fields.RegionBody, Format: fields.FormatHTML},
	}
}

func TestFillCollectsRegions(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{
		"article-title (ARTICLE_TITLE)": "Hello",
		"meta-doi (META_DOI)":           "",
		"article-body (ARTICLE_BODY)":   "<p>Body</p>",
	}}
	filler := prompt.New(prompt.WithPromptDriver(driver), prompt.WithFieldMap(smallMap()))

	doc, err := filler.Fill(context.Background(), nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := fields.Document{Format: "html", Regions: map[string]string{
		fields.RegionTitle: "Hello",
		fields.RegionBody:  "<p>Body</p>",
	}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"article-body (ARTICLE_BODY)"}, driver.textArea); diff != "" {
		t.Fatalf("text area prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestFillMarkdownDocumentResolves(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{
		"article-title (ARTICLE_TITLE)": "*Hello*",
		"article-body (ARTICLE_BODY)":   "**Body**",
	}}
	filler := prompt.New(prompt.WithPromptDriver(driver), prompt.WithFieldMap(smallMap()), prompt.WithMarkdown(true))

	doc, err := filler.Fill(context.Background(), nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	regions, err := doc.Resolve(smallMap())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := regions[fields.RegionTitle]; got != "<em>Hello</em>" {
		t.Fatalf("title = %q", got)
	}
	if got := regions[fields.RegionBody]; got != "<strong>Body</strong>" {
		t.Fatalf("body = %q", got)
	}
}

func TestFillRequiresTitle(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{"article-title (ARTICLE_TITLE)": "<b> </b>"}}
	filler := prompt.New(prompt.WithPromptDriver(driver), prompt.WithFieldMap(smallMap()))

	if _, err := filler.Fill(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestFillAborted(t *testing.T) {
	driver := &stubDriver{
		answers: map[string]string{"article-title (ARTICLE_TITLE)": "Hello"},
		failOn:  "article-body (ARTICLE_BODY)",
	}
	filler := prompt.New(prompt.WithPromptDriver(driver), prompt.WithFieldMap(smallMap()))

	_, err := filler.Fill(context.Background(), nil)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestChooseTemplate(t *testing.T) {
	entries := registry.DefaultEntries()
	driver := &stubDriver{selected: 2}
	filler := prompt.New(prompt.WithPromptDriver(driver))

	id, err := filler.ChooseTemplate(context.Background(), entries, "template1")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if id != "template3" {
		t.Fatalf("expected template3, got %q", id)
	}

	if _, err := filler.ChooseTemplate(context.Background(), nil, ""); !errors.Is(err, prompt.ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates, got %v", err)
	}
}
