package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the subset of the generated schema used for verification
type schemaDoc struct {
	Ref  string                    `json:"$ref"`
	Defs map[string]schemaDocEntry `json:"$defs"`
}

type schemaDocEntry struct {
	Properties map[string]json.RawMessage `json:"properties"`
	Required   []string                   `json:"required"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	root, ok := schema.Defs[strings.TrimPrefix(schema.Ref, "#/$defs/")]
	if !ok {
		return fmt.Errorf("schema root %q not found", schema.Ref)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// every config key must be known to the schema, otherwise schema.json is stale
	var unknown []string
	for k := range configMap {
		if _, ok := root.Properties[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("properties not in schema: %s", strings.Join(unknown, ", "))
	}

	for _, k := range root.Required {
		if _, ok := configMap[k]; !ok {
			return fmt.Errorf("%s is required", k)
		}
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("feeds is required")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if cfg.CacheDir == "" {
		return fmt.Errorf("cache_dir is required")
	}
	if cfg.DefaultImage == "" {
		return fmt.Errorf("default_image is required")
	}
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.HTTP.Timeout == 0 {
		return fmt.Errorf("http.timeout is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
