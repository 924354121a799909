package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todo/models"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatTOML   = "toml"
	formatSQLite = "sqlite"
)

// Formats lists every supported value of the data format setting.
var Formats = []string{formatJSON, formatYAML, formatTOML, formatSQLite}

// tomlDocument wraps the collection because TOML has no top-level arrays.
type tomlDocument struct {
	Tasks []models.Task `toml:"tasks"`
}

const taskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "completed"],
    "properties": {
      "id": {"type": "integer"},
      "description": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var taskListValidator = jsonschema.MustCompileString("tasks.schema.json", taskListSchema)

// encodeTasks marshals the collection in the given file format.
// A nil collection is written as an empty one, never as null.
func encodeTasks(format string, tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return data, nil
	case formatYAML:
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	case formatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return nil, fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported data format for saving: %s", format)
	}
}

// decodeTasks parses a stored document. Whitespace-only input is an empty collection.
func decodeTasks(format string, data []byte) ([]models.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	switch format {
	case formatJSON:
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		if err := taskListValidator.Validate(doc); err != nil {
			return nil, fmt.Errorf("document does not match task list schema: %w", err)
		}
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	case formatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal TOML: %w", err)
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("unsupported data format for loading: %s", format)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}
