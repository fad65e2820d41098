package bytetree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafRoundTrip(t *testing.T) {
	leaf := NewLeaf([]byte("hello election"))
	got, err := DecodeExact(leaf.Encode())
	require.NoError(t, err)
	require.True(t, Equal(leaf, got))
}

func TestNodeRoundTrip(t *testing.T) {
	tree := NewNode(
		NewLeaf([]byte("label")),
		NewNode(NewLeaf([]byte("a")), NewLeaf([]byte("b"))),
		NewLeaf([]byte{0}),
	)
	encoded := tree.Encode()
	got, err := DecodeExact(encoded)
	require.NoError(t, err)
	require.True(t, Equal(tree, got))
}

func TestDecodeRejectsBadTag(t *testing.T) {
	buf := []byte{0x02, 0, 0, 0, 1, 'x'}
	_, _, err := Decode(buf)
	require.ErrorIs(t, err, ErrBadTag)
}

func TestDecodeRejectsNonPositiveLength(t *testing.T) {
	buf := []byte{0x01, 0, 0, 0, 0}
	_, _, err := Decode(buf)
	require.ErrorIs(t, err, ErrBadLength)

	negAsUint := []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	_, _, err = Decode(negAsUint)
	require.ErrorIs(t, err, ErrBadLength)
}

func TestDecodeRejectsTruncatedStream(t *testing.T) {
	buf := []byte{0x01, 0, 0, 0, 10, 'a', 'b'}
	_, _, err := Decode(buf)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestAsByteTreeAcceptsBytesOrTree(t *testing.T) {
	a := AsByteTree([]byte("x"))
	b := AsByteTree(NewLeaf([]byte("x")))
	require.True(t, Equal(a, b))
}
