// Package schema holds the authoritative JSON Schema (draft 2020-12) for
// calculation input documents and the gate that enforces it before the
// engine ever sees the data. Unknown fields, unknown enum values,
// out-of-range numerics, and missing required fields are all rejected here.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/landquant/severance/internal/parcel"

	_ "embed"
)

//go:embed schema.json
var schemaJSON []byte

// inputSchema is compiled once at startup; the document is a build artifact,
// so a compilation failure is a broken build, not a runtime condition.
var inputSchema = mustCompile()

func mustCompile() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded input schema is not valid JSON: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("severance-input.json", doc); err != nil {
		panic(fmt.Sprintf("registering embedded input schema: %v", err))
	}
	compiled, err := compiler.Compile("severance-input.json")
	if err != nil {
		panic(fmt.Sprintf("compiling embedded input schema: %v", err))
	}
	return compiled
}

// JSON returns the schema document, for callers that validate offline.
func JSON() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// ValidateDocument checks raw JSON against the input schema. The returned
// error wraps *jsonschema.ValidationError, whose cause tree names every
// failing location.
func ValidateDocument(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("input is not valid JSON: %w", err)
	}
	if err := inputSchema.Validate(doc); err != nil {
		return fmt.Errorf("input does not match schema: %w", err)
	}
	return nil
}

// Decode validates data against the schema and unmarshals it into the input
// record set. The schema runs first, so decode errors indicate a schema gap
// rather than a malformed document.
func Decode(data []byte) (*parcel.Input, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var in parcel.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	return &in, nil
}

// IsValidationError reports whether err came from the schema gate (as
// opposed to unreadable JSON or an I/O problem).
func IsValidationError(err error) bool {
	var verr *jsonschema.ValidationError
	return errors.As(err, &verr)
}
