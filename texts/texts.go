package texts

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_texts.go -package mocks mood_parrot/texts ITexts

//go:embed snippets
var fs embed.FS

type ITexts interface {
	Get(id string) string
	Render(id string, model any) (string, error)
}

func NewTexts() ITexts {
	return &texts{templates: make(map[string]*template.Template)}
}

type texts struct {
	mu        sync.Mutex
	templates map[string]*template.Template
}

// Get returns the snippet's raw content, or an empty string if there is no such snippet.
func (t *texts) Get(id string) string {
	bytes, err := fs.ReadFile(snippetPath(id))
	if err != nil {
		return ""
	}
	return string(bytes)
}

// Render executes the snippet as an HTML template. Parsed templates are cached.
func (t *texts) Render(id string, model any) (string, error) {
	tmpl, err := t.getTemplate(id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("rendering snippet %s: %w", id, err)
	}
	return buf.String(), nil
}

func (t *texts) getTemplate(id string) (*template.Template, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tmpl, found := t.templates[id]; found {
		return tmpl, nil
	}
	tmpl, err := template.New(id).Funcs(funcs).ParseFS(fs, snippetPath(id))
	if err != nil {
		return nil, fmt.Errorf("parsing snippet %s: %w", id, err)
	}
	t.templates[id] = tmpl
	return tmpl, nil
}

func snippetPath(id string) string {
	return fmt.Sprintf("snippets/%s", id)
}
