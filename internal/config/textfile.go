package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/speedread/internal/reader"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// LoadTextFile reads a text file as a sample text with the given id.
// Files ending in .gz or .zst are decompressed first, and Markdown is
// reduced to its prose. The title is the file name without extensions.
func LoadTextFile(path string, id int) (reader.SampleText, error) {
	path = ResolvePath("", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return reader.SampleText{}, fmt.Errorf("reading text file: %w", err)
	}

	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz":
		data, err = gunzip(data)
	case ".zst":
		data, err = unzstd(data)
	}
	if err != nil {
		return reader.SampleText{}, fmt.Errorf("decompressing %s: %w", path, err)
	}
	if ext == ".gz" || ext == ".zst" {
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}

	body := string(data)
	if ext == ".md" || ext == ".markdown" {
		body = PlainText(data)
	}
	body = normalize(body)
	if body == "" {
		return reader.SampleText{}, fmt.Errorf("text file %s is empty", path)
	}

	return reader.SampleText{
		ID:    id,
		Title: strings.TrimSuffix(name, filepath.Ext(name)),
		Body:  body,
	}, nil
}

// normalize composes runes to NFC so scroll positions count what is seen.
func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func unzstd(data []byte) ([]byte, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll(data, nil)
}

// PlainText extracts the readable prose from Markdown. Code and HTML blocks
// are dropped, block elements are separated by blank lines.
func PlainText(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	var buf strings.Builder
	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			blocks = append(blocks, s)
		}
		buf.Reset()
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				buf.Write(n.Segment.Value(src))
				if n.SoftLineBreak() || n.HardLineBreak() {
					buf.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(n.Value)
			}
		case *ast.CodeSpan:
			if entering {
				for c := n.FirstChild(); c != nil; c = c.NextSibling() {
					if t, ok := c.(*ast.Text); ok {
						buf.Write(t.Segment.Value(src))
					}
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			if !entering {
				flush()
			}
		}
		return ast.WalkContinue, nil
	})
	flush()

	return strings.Join(blocks, "\n\n")
}
