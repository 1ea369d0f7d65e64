package plaintext_test

import (
	"errors"
	"strings"
	"testing"

	goturlogs "github.com/sophie-katz/got-ur-logs-uwu"
	"github.com/sophie-katz/got-ur-logs-uwu/formatter/plaintext"
)

type entry = goturlogs.Entry[goturlogs.Level]

func render(t *testing.T, f *plaintext.Formatter[goturlogs.Level, entry], m entry) string {
	t.Helper()
	var sb strings.Builder
	if err := f.Format(m, &sb); err != nil {
		t.Fatalf("format: %v", err)
	}
	return sb.String()
}

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	f := plaintext.Default[goturlogs.Level, entry]()
	got := render(t, f, goturlogs.NewEntry(goturlogs.LevelInfo, "hello, world"))
	if got != "[INFO] hello, world" {
		t.Fatalf("default render: got %q", got)
	}

	got = render(t, f, goturlogs.NewEntry(goturlogs.LevelDevWarning, "mind the gap"))
	if got != "[DEV WARNING] mind the gap" {
		t.Fatalf("dev warning render: got %q", got)
	}
}

func TestCustomTemplate(t *testing.T) {
	t.Parallel()

	f, err := plaintext.New[goturlogs.Level, entry]("{{severity}}: {{text}}")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := render(t, f, goturlogs.NewEntry(goturlogs.LevelInfo, "hello, world"))
	if got != "info: hello, world" {
		t.Fatalf("custom render: got %q", got)
	}
}

func TestTemplateWhitespaceAndLiterals(t *testing.T) {
	t.Parallel()

	f, err := plaintext.New[goturlogs.Level, entry]("{{ severity }} | {{ text }} !")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := render(t, f, goturlogs.NewEntry(goturlogs.LevelError, "boom"))
	if got != "error | boom !" {
		t.Fatalf("render: got %q", got)
	}

	// Templates with no substitutions are legal.
	f, err = plaintext.New[goturlogs.Level, entry]("static line")
	if err != nil {
		t.Fatalf("compile literal: %v", err)
	}
	if got := render(t, f, goturlogs.NewEntry(goturlogs.LevelInfo, "ignored")); got != "static line" {
		t.Fatalf("literal render: got %q", got)
	}
}

func TestMalformedTemplates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		template string
	}{
		{"unclosed", "[{{severity] {{text}}"},
		{"unknown variable", "{{severity}} {{color}}"},
		{"empty variable", "{{}} {{text}}"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := plaintext.New[goturlogs.Level, entry](c.template)
			if err == nil {
				t.Fatalf("template %q compiled", c.template)
			}
			var terr *plaintext.TemplateError
			if !errors.As(err, &terr) {
				t.Fatalf("expected TemplateError, got %T: %v", err, err)
			}
		})
	}
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestRenderSurfacesSinkErrors(t *testing.T) {
	t.Parallel()

	f := plaintext.Default[goturlogs.Level, entry]()
	err := f.Format(goturlogs.NewEntry(goturlogs.LevelInfo, "hello"), failingSink{})
	if err == nil {
		t.Fatal("expected render error")
	}
	if !strings.Contains(err.Error(), "sink closed") {
		t.Fatalf("sink error not wrapped: %v", err)
	}
}
