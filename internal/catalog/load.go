package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed offers.yaml
var defaultOffers []byte

//go:embed schema.json
var schemaDoc []byte

const schemaURL = "schema://cordiale/catalog.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(DefaultSource, defaultOffers)
}

// Load reads a catalog from a YAML file on disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(path, data)
}

// LoadOrDefault loads path, or the bundled catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and checks a YAML catalog. The document is checked against
// the catalog JSON schema first, then the decoded offers are validated as
// structs. source is only used to label errors.
func Parse(source string, data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("decode yaml: %w", err)}
	}
	if noOffers(raw) {
		return nil, &LoadError{Source: source, Err: ErrEmptyCatalog}
	}
	if err := checkShape(raw); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("decode offers: %w", err)}
	}
	if len(doc.Offers) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmptyCatalog}
	}
	if err := validate.Struct(doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("validate offers: %w", err)}
	}

	return &Catalog{source: source, items: doc.Offers}, nil
}

// noOffers reports an empty document, an empty mapping, or a null offers
// key. Other shape problems are left to the schema.
func noOffers(raw any) bool {
	if raw == nil {
		return true
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	if len(m) == 0 {
		return true
	}
	offers, found := m["offers"]
	return found && offers == nil
}

// checkShape validates the generic YAML value against the embedded schema.
// The value is round-tripped through JSON so numbers reach the validator in
// the form it expects.
func checkShape(raw any) error {
	sch, err := catalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert catalog to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse catalog json: %w", err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDoc))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
