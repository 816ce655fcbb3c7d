package block

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed block.schema.json
var definitionSchemaText string

var (
	definitionSchemaOnce sync.Once
	definitionSchema     *jsonschema.Schema
	definitionSchemaErr  error
)

func compiledDefinitionSchema() (*jsonschema.Schema, error) {
	definitionSchemaOnce.Do(func() {
		definitionSchema, definitionSchemaErr = jsonschema.CompileString("block.schema.json", definitionSchemaText)
	})
	return definitionSchema, definitionSchemaErr
}

// ValidateDefinition проверяет YAML-описание блока по JSON-схеме
func ValidateDefinition(data []byte) error {
	schema, err := compiledDefinitionSchema()
	if err != nil {
		return fmt.Errorf("схема описания блока: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return schema.Validate(doc)
}
