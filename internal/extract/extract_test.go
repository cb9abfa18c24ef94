package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestText_PlainPassthrough(t *testing.T) {
	body := "John Doe\nExperience\n- built things"
	got, err := Text(context.Background(), []byte(body), "text/plain; charset=utf-8", "cv.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != body {
		t.Fatalf("plain text should pass through unchanged, got %q", got)
	}
}

func TestText_UnsupportedType(t *testing.T) {
	_, err := Text(context.Background(), []byte("GIF89a"), "image/gif", "cv.gif")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestText_ZipWithoutDocumentXMLRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected error for zip without word/document.xml")
	}
}

func TestText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Text(ctx, []byte("hello"), "text/plain", "cv.txt"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:p><w:r><w:t>Summary</w:t></w:r></w:p><w:p><w:r><w:t>Experienced engineer</w:t></w:r></w:p>`
	got := stripDocxXML(raw)
	if !strings.Contains(got, "Summary") || !strings.Contains(got, "Experienced engineer") {
		t.Fatalf("expected text content preserved, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph boundary newline, got %q", got)
	}
}

func TestNormalizeMimeType_DocxFromZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(`<w:document/>`)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	got := normalizeMimeType("application/zip", "upload.bin", buf.Bytes())
	if got != mimeDOCX {
		t.Fatalf("expected docx mime, got %s", got)
	}
}
