package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestPlainText(t *testing.T) {
	src := []byte("# Title\n\nSome *emphasis* and `code` here\nsoft break.\n\n```go\nfunc hidden() {}\n```\n\n- one\n- two\n\n<div>html</div>\n")

	want := "Title\n\nSome emphasis and code here soft break.\n\none\n\ntwo"
	if got := PlainText(src); got != want {
		t.Errorf("PlainText =\n%q\nwant\n%q", got, want)
	}
}

func TestLoadTextFileFormats(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte("packed words"))
	zw.Close()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	zst := enc.EncodeAll([]byte("## Heading\n\nsqueezed text"), nil)
	enc.Close()

	files := map[string][]byte{
		"notes.txt.gz":  gz.Bytes(),
		"doc.md.zst":    zst,
		"essay.md":      []byte("Intro paragraph.\n\n```\nskip me\n```\n"),
		"accents.txt":   []byte("cafe\u0301"),
		"broken.txt.gz": []byte("not gzip"),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		file  string
		title string
		body  string
	}{
		{"notes.txt.gz", "notes", "packed words"},
		{"doc.md.zst", "doc", "Heading\n\nsqueezed text"},
		{"essay.md", "essay", "Intro paragraph."},
		{"accents.txt", "accents", "caf\u00e9"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := LoadTextFile(filepath.Join(dir, tt.file), 7)
			if err != nil {
				t.Fatalf("LoadTextFile: %v", err)
			}
			if got.ID != 7 || got.Title != tt.title || got.Body != tt.body {
				t.Errorf("got %+v, want title %q body %q", got, tt.title, tt.body)
			}
		})
	}

	if _, err := LoadTextFile(filepath.Join(dir, "broken.txt.gz"), 1); err == nil {
		t.Error("expected error for corrupt gzip")
	}
}

func TestGetConfigDirOverrides(t *testing.T) {
	t.Setenv("SPEEDREAD_CONFIG_HOME", "/tmp/sr")
	if dir, err := GetConfigDir(); err != nil || dir != "/tmp/sr" {
		t.Errorf("GetConfigDir = %q, %v", dir, err)
	}

	t.Setenv("SPEEDREAD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if dir, err := GetConfigDir(); err != nil || dir != filepath.Join("/tmp/xdg", "speedread") {
		t.Errorf("GetConfigDir = %q, %v", dir, err)
	}
}

func TestResolvePathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ResolvePath("/cfg", "~/texts.yaml"); got != filepath.Join(home, "texts.yaml") {
		t.Errorf("ResolvePath = %q", got)
	}
}
