package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pavver/flexbuf/internal/linebuf"
)

func newPopulatedBuffer(t *testing.T) *linebuf.Buffer {
	t.Helper()
	b, err := linebuf.New(linebuf.Options{Capacity: 64, MaxRecords: 8})
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}
	for _, rec := range []string{"alpha", "beta\n", "gamma"} {
		if _, err := b.WriteRecord([]byte(rec)); err != nil {
			t.Fatalf("write %q: %v", rec, err)
		}
	}
	return b
}

func TestRenderHTMLContainsRecords(t *testing.T) {
	b := newPopulatedBuffer(t)
	var out bytes.Buffer
	if err := Render(&out, b.Inspect(), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Capacity: 64, MaxRecords: 8",
		"<table id=\"Buffer\">",
		"<table id=\"Records\">",
		"alpha",
		"gamma",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRenderEscapesControlCharacters(t *testing.T) {
	b := newPopulatedBuffer(t)
	var out bytes.Buffer
	if err := Render(&out, b.Inspect(), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `beta\n`) {
		t.Fatalf("newline not escaped in output")
	}
	if strings.Contains(out.String(), "beta\n<") {
		t.Fatalf("raw newline leaked into record table")
	}
}

func TestRenderHTMLEscapesMarkup(t *testing.T) {
	b, err := linebuf.New(linebuf.Options{Capacity: 64, MaxRecords: 4})
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}
	if _, err := b.WriteRecord([]byte("<script>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := Render(&out, b.Inspect(), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "<script>") {
		t.Fatalf("markup not escaped")
	}
}

func TestRenderTextListsActiveWindow(t *testing.T) {
	b := newPopulatedBuffer(t)
	var out bytes.Buffer
	if err := RenderText(&out, b.Inspect(), nil); err != nil {
		t.Fatalf("render text: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "capacity=64 maxRecords=8") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, `id=0`) || !strings.Contains(got, `"alpha"`) {
		t.Fatalf("missing record line: %q", got)
	}
}

func TestRenderWithFilter(t *testing.T) {
	b := newPopulatedBuffer(t)
	f, err := NewFilter(`text.contains("gam")`)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	var out bytes.Buffer
	if err := RenderText(&out, b.Inspect(), f); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "alpha") || !strings.Contains(out.String(), "gamma") {
		t.Fatalf("filter not applied: %q", out.String())
	}
}

func TestRenderFragmentedRecord(t *testing.T) {
	b, err := linebuf.New(linebuf.Options{Capacity: 10, MaxRecords: 4})
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}
	if _, err := b.WriteRecord([]byte("ABCDEFGH")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := b.WriteRecord([]byte("XYZ")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := RenderText(&out, b.Inspect(), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "fragmented") || !strings.Contains(out.String(), `"XYZ"`) {
		t.Fatalf("fragmented record not reassembled: %q", out.String())
	}
}
