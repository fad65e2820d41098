package group

import (
	"encoding/binary"
	"errors"

	"github.com/takakv/egverify/bigint"
)

// ErrMessageTooLong is returned by Encode when the message does not fit
// the group's fixed encoding capacity.
var ErrMessageTooLong = errors.New("group: message too long to encode in one element")

// Encode maps msg to a group element: a 4-byte big-endian length prefix
// is prepended to msg, padded to B_G-1 bytes, interpreted as a BigInt
// mod p; if that value is not a quadratic residue, its additive inverse
// mod p is used instead (the residue/non-residue pair covers every
// coset representative). A zero-length message gets one nonzero
// padding byte so it never encodes to zero (spec.md §4.4).
func (grp *ModPGroup) Encode(msg []byte) (Elt, error) {
	capacity := grp.byteLen() - 1
	if len(msg)+4 > capacity {
		return nil, ErrMessageTooLong
	}
	payload := make([]byte, capacity)
	binary.BigEndian.PutUint32(payload[:4], uint32(len(msg)))
	copy(payload[4:4+len(msg)], msg)
	if len(msg) == 0 {
		payload[4] = 1
	}

	v := bigint.Mod(bigint.FromBytes(payload), grp.p)
	if v.IsZero() {
		v = bigint.One()
	}
	if bigint.Legendre(v, grp.p) != 1 {
		v = bigint.Sub(grp.p, v)
	}
	return &ModPElt{group: grp, val: v}, nil
}

// Decode reads the 4-byte length prefix out of e's payload and returns
// exactly that many bytes.
func (grp *ModPGroup) Decode(e Elt) ([]byte, error) {
	me, ok := e.(*ModPElt)
	if !ok || !grp.equals(me.group) {
		return nil, ErrCrossGroup
	}
	raw := me.Bytes()
	if raw[0] != 0 {
		// Encode's payload value is below 256^(B_G-1), so its leading
		// byte is zero; a nonzero leading byte means Encode stored p - v
		// for a non-residue v, which is undone here.
		raw = (&ModPElt{group: grp, val: bigint.Sub(grp.p, me.val)}).Bytes()
	}
	payload := raw[1:] // strip the leading byte reserved by the fixed encoding width
	if len(payload) < 4 {
		return nil, errors.New("group: Decode: encoded value too short")
	}
	n := binary.BigEndian.Uint32(payload[:4])
	if int(n)+4 > len(payload) {
		return nil, errors.New("group: Decode: declared length overruns payload")
	}
	return payload[4 : 4+n], nil
}
