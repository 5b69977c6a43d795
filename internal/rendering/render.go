package rendering

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resumeforge/internal/preview"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format names an output presentation.
type Format string

const (
	FormatText  Format = "text"
	FormatHTML  Format = "html"
	FormatLaTeX Format = "latex"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatHTML, FormatLaTeX}

// ParseFormat resolves a format name. "txt" and "tex" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "html":
		return FormatHTML, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	}
	return "", fmt.Errorf("unknown render format %q (want one of %v)", s, Formats)
}

func (f Format) templateName() string {
	switch f {
	case FormatHTML:
		return "resume.html.tmpl"
	case FormatLaTeX:
		return "resume.tex.tmpl"
	default:
		return "resume.txt.tmpl"
	}
}

// Renderer writes a preview in one presentation. All renderers show the same
// blocks; they differ only in markup.
type Renderer interface {
	Format() Format
	Render(w io.Writer, p preview.Preview) error
}

type executor interface {
	Execute(w io.Writer, data any) error
}

type templateRenderer struct {
	format Format
	tmpl   executor
}

func (r *templateRenderer) Format() Format {
	return r.format
}

func (r *templateRenderer) Render(w io.Writer, p preview.Preview) error {
	// A failing template leaves no partial output in w.
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, p); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Format: r.format, Message: "failed to write output", Cause: err}
	}
	return nil
}

// New builds a renderer for format. An empty templatePath selects the
// built-in template.
func New(format Format, templatePath string) (Renderer, error) {
	content, err := readTemplate(format, templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := parseTemplate(format, content)
	if err != nil {
		return nil, err
	}
	return &templateRenderer{format: format, tmpl: tmpl}, nil
}

// Default returns the built-in renderer for format.
func Default(format Format) Renderer {
	r, err := New(format, "")
	if err != nil {
		panic(err)
	}
	return r
}

// RenderString renders p into a string.
func RenderString(r Renderer, p preview.Preview) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, p); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func readTemplate(format Format, templatePath string) (string, error) {
	if templatePath == "" {
		content, err := templateFS.ReadFile("templates/" + format.templateName())
		if err != nil {
			return "", &TemplateError{Message: fmt.Sprintf("no built-in template for %s", format), Cause: err}
		}
		return string(content), nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return string(content), nil
}

// parseTemplate parses content with the helper functions of its format.
// HTML goes through html/template so user input is always escaped.
func parseTemplate(format Format, content string) (executor, error) {
	funcs := map[string]any{
		"join":         strings.Join,
		"joinNonEmpty": joinNonEmpty,
		"lines":        splitLines,
		"escape":       EscapeLaTeX,
		"escapeLines":  EscapeLaTeXLines,
	}

	var (
		tmpl executor
		err  error
	)
	switch format {
	case FormatHTML:
		tmpl, err = htmltemplate.New(format.templateName()).Funcs(htmltemplate.FuncMap(funcs)).Parse(content)
	case FormatText, FormatLaTeX:
		tmpl, err = template.New(format.templateName()).Funcs(template.FuncMap(funcs)).Parse(content)
	default:
		return nil, &TemplateError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
