package model

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const scheduleSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "start", "end", "description"],
    "properties": {
      "id": {"type": "integer"},
      "start": {"type": "integer", "minimum": 0, "maximum": 2359},
      "end": {"type": "integer", "minimum": 0, "maximum": 2359},
      "description": {"type": "string", "minLength": 1, "pattern": "\\S"}
    }
  }
}`

const taskSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed"],
    "properties": {
      "id": {"type": "integer"},
      "text": {"type": "string", "minLength": 1, "pattern": "\\S"},
      "completed": {"type": "boolean"}
    }
  }
}`

const habitSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "done"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string"},
      "done": {"type": "boolean"}
    }
  }
}`

var (
	scheduleValidator = jsonschema.MustCompileString("stardeck://schedule.json", scheduleSchema)
	taskValidator     = jsonschema.MustCompileString("stardeck://tasks.json", taskSchema)
	habitValidator    = jsonschema.MustCompileString("stardeck://habits.json", habitSchema)
)

// DecodeSchedule parses a stored schedule payload. Any entry with
// start >= end makes the whole payload malformed.
func DecodeSchedule(raw string) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	if err := decode(raw, scheduleValidator, &entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Start >= e.End {
			return nil, fmt.Errorf("%w: entry %d ends before it starts", ErrMalformed, e.ID)
		}
	}
	return entries, nil
}

// DecodeTasks parses a stored task payload.
func DecodeTasks(raw string) ([]Task, error) {
	var tasks []Task
	if err := decode(raw, taskValidator, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// DecodeHabits parses a stored habit payload.
func DecodeHabits(raw string) ([]HabitRecord, error) {
	var habits []HabitRecord
	if err := decode(raw, habitValidator, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// Encode serializes records for storage.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode validates raw against schema before unmarshaling into out.
func decode(raw string, schema *jsonschema.Schema, out any) error {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
