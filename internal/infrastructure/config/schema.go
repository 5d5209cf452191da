package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

// Schema reflects the preference document into a JSON schema.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.Preferences{})

	schema.ID = "https://github.com/bnema/burrow/settings.schema.json"
	schema.Title = "Burrow Preferences"
	schema.Description = "Preference document of the Burrow web browser"
	return schema
}

// WriteSchema writes the schema as indented JSON.
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// GenerateSchemaFile writes settings.schema.json next to the settings file.
func GenerateSchemaFile(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, schemaFileName)
	f, err := os.OpenFile(schemaFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return "", fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	if err := WriteSchema(f); err != nil {
		return "", err
	}
	return schemaFile, nil
}
