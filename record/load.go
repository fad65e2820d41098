package record

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Load validates data against the embedded schema and unmarshals it
// into an ElectionRecord. Any failure here is a structural fatal
// (spec.md §7): the caller should abort before the verification tree
// ever runs rather than attempt to verify a partially-decoded record.
func Load(data []byte) (*ElectionRecord, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	var rec ElectionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "record: failed to decode election record JSON")
	}
	return &rec, nil
}
