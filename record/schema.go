package record

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaJSON is the fixed ElectionGuard 0.85 record schema (spec.md
// §6: "A single JSON document conforming to the fixed ElectionGuard
// 0.85 schema"). It checks top-level shape only — the out-of-scope
// "JSON-schema shape validation" collaborator spec.md §1 names, not a
// core verification predicate.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://egverify.invalid/record.schema.json",
  "title": "ElectionGuard 0.85 election record",
  "type": "object",
  "required": [
    "parameters", "trustee_public_keys", "joint_public_key",
    "base_hash", "extended_base_hash",
    "cast_ballots", "contest_tallies", "spoiled_ballots"
  ],
  "properties": {
    "parameters": {
      "type": "object",
      "required": ["num_trustees", "threshold", "prime", "generator"],
      "properties": {
        "num_trustees": {"type": "integer", "minimum": 1},
        "threshold": {"type": "integer", "minimum": 1},
        "prime": {"type": "string"},
        "generator": {"type": "string"},
        "date": {"type": "string"}
      }
    },
    "trustee_public_keys": {"type": "array"},
    "joint_public_key": {"type": "string"},
    "base_hash": {"type": "string"},
    "extended_base_hash": {"type": "string"},
    "cast_ballots": {"type": "array"},
    "contest_tallies": {"type": "array"},
    "spoiled_ballots": {"type": "array"}
  }
}`

// compileSchema compiles the embedded schema; ValidateSchema calls it
// afresh on every validation, nothing is cached. Compilation failure
// here would be a bug in this module, not a record error, so callers
// treat it as a structural fatal (spec.md §7).
func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResourceURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, errors.Wrap(err, "record: failed to load embedded schema")
	}
	sch, err := c.Compile(schemaResourceURL)
	if err != nil {
		return nil, errors.Wrap(err, "record: failed to compile embedded schema")
	}
	return sch, nil
}

const schemaResourceURL = "record.schema.json"

// ValidateSchema checks data against the embedded ElectionGuard 0.85
// record schema, per spec.md §4.7 step 1 ("JSON-schema validation
// (delegated)"). A non-nil error is a structural fatal: the record
// never reaches the verification tree (spec.md §7).
func ValidateSchema(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "record: input is not valid JSON")
	}
	if err := sch.Validate(inst); err != nil {
		return errors.Wrap(err, "record: does not conform to the election record schema")
	}
	return nil
}
