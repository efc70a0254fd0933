package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-articlegen/internal/loader"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
	"github.com/goliatone/go-articlegen/pkg/source"
)

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"templates/template1.css": {Data: []byte("body{}")},
	}
	l := loader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(files)))

	data, err := l.Load(context.Background(), source.FromFS("/templates/template1.css"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "body{}" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestLoader_FSNotConfigured(t *testing.T) {
	l := loader.New(pkgloader.NewOptions())
	if _, err := l.Load(context.Background(), source.FromFS("x.css")); err == nil {
		t.Fatalf("expected error when filesystem is missing")
	}
}

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	if err := os.WriteFile(path, []byte("<main>{{ARTICLE_BODY}}</main>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(pkgloader.NewOptions())
	data, err := l.Load(context.Background(), source.FromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(string(data), "{{ARTICLE_BODY}}") {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(pkgloader.NewOptions())
	_, err := l.Load(context.Background(), source.MustFromURL("http://127.0.0.1/template.css"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.css":
			http.NotFound(w, r)
			return
		case "/page.txt":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		case "/latin1.css":
			w.Header().Set("Content-Type", "text/css; charset=iso-8859-1")
		default:
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		}
		_, _ = w.Write([]byte("h1{color:red}"))
	}))
	defer srv.Close()

	l := loader.New(pkgloader.NewOptions(pkgloader.WithHTTPFallback(time.Second)))

	data, err := l.Load(context.Background(), source.MustFromURL(srv.URL+"/template2.css"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "h1{color:red}" {
		t.Fatalf("unexpected payload %q", data)
	}

	if _, err := l.Load(context.Background(), source.MustFromURL(srv.URL+"/missing.css")); err == nil {
		t.Fatalf("expected status error")
	}
	if _, err := l.Load(context.Background(), source.MustFromURL(srv.URL+"/page.txt")); !errors.Is(err, pkgloader.ErrContentType) {
		t.Fatalf("expected ErrContentType, got %v", err)
	}
	if _, err := l.Load(context.Background(), source.MustFromURL(srv.URL+"/latin1.css")); !errors.Is(err, pkgloader.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding for latin1 charset, got %v", err)
	}
}

func TestLoader_RejectsInvalidUTF8(t *testing.T) {
	files := fstest.MapFS{"templates/bad.css": {Data: []byte("\xff\xfe.bad{}")}}
	l := loader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(files)))

	_, err := l.Load(context.Background(), source.FromFS("templates/bad.css"))
	if !errors.Is(err, pkgloader.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.html")
	if err := os.WriteFile(path, []byte("<p>\xc3</p>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := l.Load(context.Background(), source.FromFile(path)); !errors.Is(err, pkgloader.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding from file, got %v", err)
	}
}

func TestLoader_MaxBytes(t *testing.T) {
	files := fstest.MapFS{
		"small.css": {Data: []byte("p{}")},
		"large.css": {Data: []byte(strings.Repeat("a", 17))},
		"exact.css": {Data: []byte(strings.Repeat("b", 16))},
	}
	l := loader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(files), pkgloader.WithMaxBytes(16)))

	if _, err := l.Load(context.Background(), source.FromFS("small.css")); err != nil {
		t.Fatalf("small: %v", err)
	}
	if _, err := l.Load(context.Background(), source.FromFS("exact.css")); err != nil {
		t.Fatalf("exact limit: %v", err)
	}
	if _, err := l.Load(context.Background(), source.FromFS("large.css")); !errors.Is(err, pkgloader.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	files := fstest.MapFS{"a.css": {Data: []byte("x")}}
	l := loader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(files)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, source.FromFS("a.css")); err == nil {
		t.Fatalf("expected context error")
	}
}
