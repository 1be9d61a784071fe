package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rogersnm/taskeasy/internal/model"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const blobSchemaURL = "taskeasy-tasks.schema.json"

// blobSchema accepts entries that are null, partial or carry null fields so
// corrupt data can still be loaded; it only rejects values of the wrong JSON
// type.
const blobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": ["object", "null"],
    "properties": {
      "id":          {"type": ["string", "null"]},
      "title":       {"type": ["string", "null"]},
      "description": {"type": ["string", "null"]},
      "priority":    {"type": ["string", "null"]},
      "status":      {"type": ["string", "null"]},
      "createdAt":   {"type": ["string", "null"]},
      "updatedAt":   {"type": ["string", "null"]}
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(blobSchemaURL, strings.NewReader(blobSchema)); err != nil {
			schemaErr = fmt.Errorf("adding schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(blobSchemaURL)
	})
	return schema, schemaErr
}

// Encode serializes the collection, nil entries included, as a JSON array.
func Encode(tasks []*model.Task) (string, error) {
	if tasks == nil {
		tasks = []*model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshaling tasks: %w", err)
	}
	return string(b), nil
}

// Decode parses a blob written by Encode. The blob is checked against the
// collection schema before being unmarshaled.
func Decode(blob string) ([]*model.Task, error) {
	var raw any
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("parsing tasks: %w", err)
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := s.Validate(raw); err != nil {
		return nil, fmt.Errorf("tasks do not match schema: %w", err)
	}

	var tasks []*model.Task
	if err := json.Unmarshal([]byte(blob), &tasks); err != nil {
		return nil, fmt.Errorf("parsing tasks: %w", err)
	}
	return tasks, nil
}
