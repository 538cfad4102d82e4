// Command schema writes JSON schema of the newssite configuration,
// used by config validation (pkg/config/schema.json).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newssite/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := writeSchema(outputPath); err != nil {
		lgr.Fatalf("[ERROR] %v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}

func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema file %s: %w", path, err)
	}
	return nil
}
