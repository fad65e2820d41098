package record

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/egverify/bigint"
)

const minimalRecordJSON = `{
  "parameters": {"num_trustees": 1, "threshold": 1, "prime": "23", "generator": "4"},
  "trustee_public_keys": [],
  "joint_public_key": "4",
  "base_hash": "0",
  "extended_base_hash": "0",
  "cast_ballots": [],
  "contest_tallies": [],
  "spoiled_ballots": []
}`

func TestLoadValidRecord(t *testing.T) {
	rec, err := Load([]byte(minimalRecordJSON))
	require.NoError(t, err)
	require.Equal(t, 1, rec.Parameters.NumTrustees)
	require.Equal(t, "23", rec.Parameters.Prime)
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	_, err := Load([]byte(`{"parameters": {"num_trustees": 1, "threshold": 1, "prime": "23", "generator": "4"}}`))
	require.Error(t, err)
}

func TestLoadRejectsGarbageJSON(t *testing.T) {
	_, err := Load([]byte(`not json`))
	require.Error(t, err)
}

func TestBuildGroupAndValidateParameters(t *testing.T) {
	p := Parameters{Prime: "23", Generator: "4"}
	grp, f, err := BuildGroup(p, bigint.FromUint64(11))
	require.NoError(t, err)
	require.True(t, ValidateParameters(grp))
	require.Equal(t, 0, bigint.Cmp(f.Order, bigint.FromUint64(11)))
}

func TestBuildGroupRejectsBadGenerator(t *testing.T) {
	// 5 is a quadratic non-residue mod 23, so it generates the full
	// order-22 group, not the order-11 subgroup: 5^11 mod 23 = 22 != 1.
	p := Parameters{Prime: "23", Generator: "5"}
	grp, _, err := BuildGroup(p, bigint.FromUint64(11))
	require.NoError(t, err) // parses fine, but...
	require.False(t, ValidateParameters(grp)) // ...5 does not satisfy g^q=1
}

func TestParseGroupEltTagsFailureCode(t *testing.T) {
	p := Parameters{Prime: "23", Generator: "4"}
	grp, _, err := BuildGroup(p, bigint.FromUint64(11))
	require.NoError(t, err)
	_, err = ParseGroupElt(grp, "not-a-number", CodeAlphaLoading, "alpha")
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	require.Equal(t, CodeAlphaLoading, code)
}
