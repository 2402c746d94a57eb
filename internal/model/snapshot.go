package model

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedSnapshot is wrapped by every snapshot decoding failure.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

const snapshotSchemaURL = "todos.schema.json"

const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed"],
    "properties": {
      "id":        {"type": "integer"},
      "text":      {"type": "string"},
      "completed": {"type": "boolean"},
      "dueDate":   {"type": "string", "pattern": "^([0-9]{4}-[0-9]{2}-[0-9]{2})?$"}
    }
  }
}`

var snapshot = jsonschema.MustCompileString(snapshotSchemaURL, snapshotSchema)

// MarshalSnapshot encodes the full ordered list. An empty list encodes as [].
func MarshalSnapshot(todos []Todo) ([]byte, error) {
	if todos == nil {
		todos = []Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// UnmarshalSnapshot decodes and validates a snapshot produced by MarshalSnapshot.
func UnmarshalSnapshot(b []byte) ([]Todo, error) {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := snapshot.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	var todos []Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	seen := make(map[int64]struct{}, len(todos))
	for _, t := range todos {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformedSnapshot, t.ID)
		}
		seen[t.ID] = struct{}{}
		// the pattern lets 2026-02-30 through
		if !ValidDueDate(t.DueDate) {
			return nil, fmt.Errorf("%w: todo %d: bad due date %q", ErrMalformedSnapshot, t.ID, t.DueDate)
		}
	}
	if todos == nil {
		todos = []Todo{}
	}
	return todos, nil
}
