package composition

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaBytes []byte

// Validate performs structural validation of a composition document.
// Returns an error describing all validation failures found.
func Validate(c *Composition) error {
	var errors []string

	if err := validateMetadata(c.Metadata); err != nil {
		errors = append(errors, err.Error())
	}

	for i, entry := range c.Components {
		if err := validateEntry(entry); err != nil {
			errors = append(errors, fmt.Sprintf("component %d: %s", i, err.Error()))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("composition validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// validateMetadata validates composition metadata fields.
func validateMetadata(meta Metadata) error {
	var errors []string

	if meta.Name == "" {
		errors = append(errors, "composition name is required")
	}

	if meta.Version == "" {
		errors = append(errors, "composition version is required")
	} else if _, err := semver.NewVersion(meta.Version); err != nil {
		errors = append(errors, fmt.Sprintf("composition version %q is not valid semver: %v", meta.Version, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("composition metadata: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateEntry validates a single component entry. Amount consistency
// (fraction domain, impurity rules, unity sum) is the mixture's concern;
// only document-level requirements are checked here.
func validateEntry(entry ComponentEntry) error {
	if entry.Identifier == "" {
		return fmt.Errorf("component identifier is required")
	}
	return nil
}

// CheckVersion verifies the composition's document version against a semver
// constraint such as ">= 1.0.0".
func CheckVersion(c *Composition, constraint string) error {
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	version, err := semver.NewVersion(c.Metadata.Version)
	if err != nil {
		return fmt.Errorf("composition version %q is not valid semver: %w", c.Metadata.Version, err)
	}

	if !cons.Check(version) {
		return fmt.Errorf("composition version %s does not satisfy constraint %q", version, constraint)
	}
	return nil
}

// ValidateSchema validates a raw composition document against the embedded
// JSON Schema. This catches shape errors (wrong types, unknown fields,
// out-of-range fractions) before the document is interpreted.
func ValidateSchema(raw []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode composition YAML: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("composition.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("composition.json")
	if err != nil {
		return fmt.Errorf("failed to compile composition schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// ValidateSchemaFile validates the composition file at path against the
// embedded JSON Schema.
func ValidateSchemaFile(path string) error {
	raw, err := readFile(path)
	if err != nil {
		return err
	}
	return ValidateSchema(raw)
}

// formatSchemaValidationError formats a JSON Schema validation error into a
// readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}

		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed")
	}

	return fmt.Errorf("schema validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}
