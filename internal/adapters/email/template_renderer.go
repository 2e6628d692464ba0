package email

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"lessonreserve/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.MessageRenderer using embedded template
// files. Notifications are plain text only.
type templateRenderer struct{}

// NewTemplateRenderer returns a MessageRenderer that loads templates from the
// embedded templates folder.
func NewTemplateRenderer() domain.MessageRenderer {
	return &templateRenderer{}
}

// Render executes the named template pair (e.g. "staff") with data and
// returns the subject and plain-text body.
func (r *templateRenderer) Render(templateName string, data any) (subject, body string, err error) {
	subject, err = r.renderFile(templateName+"_subject.txt", data)
	if err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}
	body, err = r.renderFile(templateName+".txt", data)
	if err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}
	return strings.TrimSpace(subject), body, nil
}

func (r *templateRenderer) renderFile(name string, data any) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
