package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/utmtag/internal/config"
	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/core/utm"
)

var testNow = time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC)

func testBook(t *testing.T) *linkbook.Book {
	t.Helper()
	kv, err := history.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kv.Close() })

	return linkbook.Open(history.NewStore(kv), linkbook.Options{
		Policy:   utm.DefaultPolicy(utm.VariantOpen),
		IDScheme: history.IDTimestamp,
		Now:      func() time.Time { return testNow },
	})
}

func mustGenerate(t *testing.T, book *linkbook.Book, url string) history.Record {
	t.Helper()
	rec, err := book.Generate(linkbook.Input{BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestParseArgs_FlagsAfterPositionals(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	source := fs.String("source", "", "")
	copyFlag := fs.Bool("copy", false, "")

	args := parseArgs(fs, []string{"https://example.com", "--source", "google", "--copy"})
	if len(args) != 1 || args[0] != "https://example.com" {
		t.Fatalf("positionals = %v", args)
	}
	if *source != "google" || !*copyFlag {
		t.Errorf("source=%q copy=%v", *source, *copyFlag)
	}
}

func TestRunGenerate(t *testing.T) {
	book := testBook(t)
	var out bytes.Buffer
	var copied string

	in := linkbook.Input{BaseURL: "https://example.com/page", Params: utm.Params{Source: "google", Medium: "cpc"}}
	err := runGenerate(&out, book, in, func(s string) error { copied = s; return nil })
	if err != nil {
		t.Fatal(err)
	}

	want := "https://example.com/page?utm_source=google&utm_medium=cpc&utm_campaign=default"
	if strings.TrimSpace(out.String()) != want {
		t.Errorf("printed %q, want %q", out.String(), want)
	}
	if copied != want {
		t.Errorf("copied %q", copied)
	}
	if book.Len() != 1 {
		t.Errorf("book has %d links", book.Len())
	}
}

func TestRunGenerate_InvalidURL(t *testing.T) {
	book := testBook(t)
	var out bytes.Buffer

	err := runGenerate(&out, book, linkbook.Input{BaseURL: "   "}, nil)
	if !errors.Is(err, utm.ErrEmptyURL) {
		t.Fatalf("err = %v, want ErrEmptyURL", err)
	}
	if out.Len() != 0 || book.Len() != 0 {
		t.Error("failed generation must print and record nothing")
	}
}

func TestRunGenerate_CopyFailureIsSoft(t *testing.T) {
	book := testBook(t)
	var out bytes.Buffer

	err := runGenerate(&out, book, linkbook.Input{BaseURL: "https://example.com"}, func(string) error {
		return errors.New("no display")
	})
	if err != nil {
		t.Fatalf("copy failure should not fail the command: %v", err)
	}
	if book.Len() != 1 {
		t.Error("link should still be recorded")
	}
}

func TestPrintHistory(t *testing.T) {
	book := testBook(t)
	first := mustGenerate(t, book, "https://a.example")
	second := mustGenerate(t, book, "https://b.example")

	var out bytes.Buffer
	printHistory(&out, book.Newest(), linkbook.DefaultTimestampLayout, testNow.Add(2*time.Hour))
	got := out.String()

	if strings.Index(got, second.ID) > strings.Index(got, first.ID) {
		t.Errorf("newest link should come first:\n%s", got)
	}
	if !strings.Contains(got, "(2 hours ago)") {
		t.Errorf("missing relative age:\n%s", got)
	}

	out.Reset()
	printHistory(&out, nil, linkbook.DefaultTimestampLayout, testNow)
	if out.String() != "No links.\n" {
		t.Errorf("empty history printed %q", out.String())
	}
}

func TestRunDelete(t *testing.T) {
	book := testBook(t)
	keep := mustGenerate(t, book, "https://a.example")
	drop := mustGenerate(t, book, "https://b.example")

	var out bytes.Buffer
	n, err := runDelete(&out, strings.NewReader("n\n"), book, []string{drop.ID})
	if err != nil || n != 0 || book.Len() != 2 {
		t.Fatalf("declined delete: n=%d err=%v len=%d", n, err, book.Len())
	}

	n, err = runDelete(&out, strings.NewReader("y\n"), book, []string{drop.ID})
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if recs := book.Records(); len(recs) != 1 || recs[0].ID != keep.ID {
		t.Errorf("remaining = %v", history.IDs(recs))
	}

	if _, err := runDelete(&out, nil, book, []string{"missing"}); err == nil {
		t.Error("unknown ids should be an error")
	}
}

func TestRunExport_TextFile(t *testing.T) {
	book := testBook(t)
	rec := mustGenerate(t, book, "https://example.com")

	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()

	var out bytes.Buffer
	err := runExport(&out, cfg, book, []string{rec.ID}, exportOptions{format: "text"}, testNow)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.ExportDir, "utm_selected_2026-10-16.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Link: "+rec.URL) {
		t.Errorf("export missing link:\n%s", data)
	}
	if !strings.Contains(out.String(), "Exported 1 link") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunExport_JSONStdout(t *testing.T) {
	book := testBook(t)
	mustGenerate(t, book, "https://a.example")
	mustGenerate(t, book, "https://b.example")

	var out bytes.Buffer
	err := runExport(&out, config.DefaultConfig(), book, nil, exportOptions{all: true, format: "json"}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `"url": "https://a.example/?utm_source=unknown&utm_medium=&utm_campaign=default"`) {
		t.Errorf("unexpected JSON:\n%s", got)
	}
	if strings.Count(got, `"id"`) != 2 {
		t.Errorf("expected 2 records:\n%s", got)
	}
}

func TestRunExport_NothingSelected(t *testing.T) {
	book := testBook(t)
	err := runExport(&bytes.Buffer{}, config.DefaultConfig(), book, []string{"nope"}, exportOptions{format: "text"}, testNow)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestBuildInitConfig(t *testing.T) {
	var prompts bytes.Buffer
	cfg, err := buildInitConfig(strings.NewReader("fixed\nnewsletter\npartner\n"), &prompts, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "fixed" || cfg.DefaultSource != "newsletter" || cfg.FixedMedium != "partner" {
		t.Errorf("cfg = %+v", cfg)
	}

	if !strings.Contains(prompts.String(), "Catppuccin Latte, Catppuccin Mocha, Nord") {
		t.Errorf("theme prompt should list built-in themes:\n%s", prompts.String())
	}

	cfg, err = buildInitConfig(strings.NewReader("\n\nNord\n"), &prompts, "open")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "open" || cfg.DefaultSource != "unknown" || cfg.DefaultCampaign != "default" || cfg.Theme != "Nord" {
		t.Errorf("blank answers should keep defaults, got %+v", cfg)
	}

	if _, err := buildInitConfig(strings.NewReader(""), &prompts, "bogus"); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestOpenBook_PersistsAcrossOpens(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	book, closeStore, err := openBook(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustGenerate(t, book, "https://example.com")
	closeStore()

	book, closeStore, err = openBook(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()
	if book.Len() != 1 {
		t.Fatalf("reopened book has %d links, want 1", book.Len())
	}
}
