package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rogersnm/taskeasy/internal/model"
	"gopkg.in/yaml.v3"
)

// TaskDocument is the editable form of a task: the frontmatter holds the
// fields, the body holds the description.
type TaskDocument struct {
	ID       string         `yaml:"id"`
	Title    string         `yaml:"title"`
	Priority model.Priority `yaml:"priority"`
	Status   model.Status   `yaml:"status"`
}

// EncodeTask renders t as a markdown document with YAML frontmatter.
func EncodeTask(t *model.Task) ([]byte, error) {
	meta := TaskDocument{ID: t.ID, Title: t.Title, Priority: t.Priority, Status: t.Status}
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if t.Description != "" {
		buf.WriteString("\n")
		buf.WriteString(t.Description)
		if !strings.HasSuffix(t.Description, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// DecodeTask reads a document written by EncodeTask. The returned
// description is the trimmed body.
func DecodeTask(r io.Reader) (TaskDocument, string, error) {
	var meta TaskDocument
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

// Update converts an edited document into a partial update against the
// original task, setting only the fields that changed.
func (d TaskDocument) Update(orig *model.Task, description string) model.TaskUpdate {
	var u model.TaskUpdate
	if d.Title != orig.Title {
		title := d.Title
		u.Title = &title
	}
	if description != orig.Description {
		u.Description = &description
	}
	if d.Priority != orig.Priority {
		p := d.Priority
		u.Priority = &p
	}
	if d.Status != orig.Status {
		s := d.Status
		u.Status = &s
	}
	return u
}
