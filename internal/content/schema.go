// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Category names a loadable content category. The value doubles as the
// schema id and the metrics label.
type Category string

// Content categories in load order.
const (
	CategoryAILogicGroup     Category = "ailogicgroup"
	CategoryDemonPresent     Category = "demonpresent"
	CategoryDemonQuestReward Category = "demonquestreward"
	CategoryDropSet          Category = "dropset"
	CategoryDerived          Category = "derived"
	CategoryZone             Category = "zone"
	CategoryZonePartial      Category = "zonepartial"
	CategoryEvent            Category = "event"
	CategoryZoneInstance     Category = "zoneinstance"
	CategoryInstanceVariant  Category = "zoneinstancevariant"
	CategoryShop             Category = "shop"
	CategoryScript           Category = "script"
)

// enumSchema builds the schema for a closed string enumeration.
func enumSchema(values ...string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

// schemaTemplates maps each record-bearing category to an empty record
// used for schema reflection.
var schemaTemplates = map[Category]any{
	CategoryAILogicGroup:     &AILogicGroup{},
	CategoryDemonPresent:     &DemonPresent{},
	CategoryDemonQuestReward: &DemonQuestReward{},
	CategoryDropSet:          &DropSet{},
	CategoryDerived:          &DerivedRecord{},
	CategoryZone:             &ZoneDefinition{},
	CategoryZonePartial:      &ZonePartial{},
	CategoryEvent:            &Event{},
	CategoryZoneInstance:     &ZoneInstance{},
	CategoryInstanceVariant:  &ZoneInstanceVariant{},
	CategoryShop:             &ServerShop{},
}

// FileDoc is the top-level shape of every record-bearing content file: a
// single document holding a list of records of one category.
type FileDoc[T any] struct {
	Records []T `yaml:"records" json:"records"`
}

var (
	schemaMu    sync.Mutex
	schemaCache = map[Category]*jschema.Schema{}
)

// Categories returns the record-bearing categories that have a generated
// schema, in stable order.
func Categories() []Category {
	return []Category{
		CategoryAILogicGroup,
		CategoryDemonPresent,
		CategoryDemonQuestReward,
		CategoryDropSet,
		CategoryDerived,
		CategoryZone,
		CategoryZonePartial,
		CategoryEvent,
		CategoryZoneInstance,
		CategoryInstanceVariant,
		CategoryShop,
	}
}

// GenerateSchema generates the JSON Schema for a category's file documents.
func GenerateSchema(category Category) ([]byte, error) {
	template, ok := schemaTemplates[category]
	if !ok {
		return nil, fmt.Errorf("no schema for category %q", category)
	}

	// Records reflect into $defs with $ref links; self-referential types
	// (actions nest action lists) must not be inlined.
	r := jsonschema.Reflector{}
	record := r.Reflect(template)

	properties := jsonschema.NewProperties()
	properties.Set("records", &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Ref: record.Ref},
	})

	schema := &jsonschema.Schema{
		Version:              record.Version,
		ID:                   jsonschema.ID("https://duskhollow.github.io/worldpack/" + string(category) + ".schema.json"),
		Title:                fmt.Sprintf("Worldpack %s file", category),
		Type:                 "object",
		Properties:           properties,
		Required:             []string{"records"},
		AdditionalProperties: jsonschema.FalseSchema,
		Definitions:          record.Definitions,
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// ValidateSchema validates a YAML content file against the category schema
// before it is decoded into typed records.
func ValidateSchema(category Category, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("content file is empty")
	}

	var yamlData any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	jsonData := convertToJSONTypes(yamlData)

	sch, err := compiledSchema(category)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	if err := sch.Validate(jsonData); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns the cached compiled schema for a category.
func compiledSchema(category Category) (*jschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if sch, ok := schemaCache[category]; ok {
		return sch, nil
	}

	schemaBytes, err := GenerateSchema(category)
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	c := jschema.NewCompiler()
	name := string(category) + ".schema.json"
	if err := c.AddResource(name, schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	sch, err := c.Compile(name)
	if err != nil {
		return nil, err
	}

	schemaCache[category] = sch
	return sch, nil
}

// convertToJSONTypes converts YAML-parsed data to JSON-compatible types.
// Map keys decoded by YAML as integers (keyed spawn tables) become strings
// so object property matching works.
func convertToJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[k] = convertToJSONTypes(v)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[fmt.Sprint(k)] = convertToJSONTypes(v)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v := range val {
			result[i] = convertToJSONTypes(v)
		}
		return result
	case int:
		return val
	case int64:
		return val
	case float64:
		return val
	case string, bool, nil:
		return val
	default:
		if b, err := json.Marshal(val); err == nil {
			var result any
			if err := json.Unmarshal(b, &result); err == nil {
				return result
			}
		}
		return val
	}
}

// DecodeFile schema-validates and decodes one content file into records.
func DecodeFile[T any](category Category, data []byte) ([]T, error) {
	if err := ValidateSchema(category, data); err != nil {
		return nil, err
	}

	var doc FileDoc[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return doc.Records, nil
}
