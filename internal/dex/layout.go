package dex

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// layout reads and writes little-endian fields at fixed offsets. Callers
// check the buffer length before constructing one.
type layout []byte

func (l layout) u8(off int) uint8 { return l[off] }

func (l layout) flag(off int) bool { return l[off] != 0 }

func (l layout) u16(off int) uint16 { return binary.LittleEndian.Uint16(l[off : off+2]) }

func (l layout) i32(off int) int32 { return int32(binary.LittleEndian.Uint32(l[off : off+4])) }

func (l layout) u64(off int) uint64 { return binary.LittleEndian.Uint64(l[off : off+8]) }

func (l layout) u128(off int) uint128.Uint128 { return uint128.FromBytes(l[off : off+16]) }

func (l layout) pubkey(off int) solana.PublicKey {
	return solana.PublicKeyFromBytes(l[off : off+32])
}

func (l layout) putU8(off int, v uint8) { l[off] = v }

func (l layout) putFlag(off int, v bool) {
	if v {
		l[off] = 1
	} else {
		l[off] = 0
	}
}

func (l layout) putU16(off int, v uint16) { binary.LittleEndian.PutUint16(l[off:off+2], v) }

func (l layout) putI32(off int, v int32) { binary.LittleEndian.PutUint32(l[off:off+4], uint32(v)) }

func (l layout) putU64(off int, v uint64) { binary.LittleEndian.PutUint64(l[off:off+8], v) }

func (l layout) putU128(off int, v uint128.Uint128) { v.PutBytes(l[off : off+16]) }

func (l layout) putPubkey(off int, k solana.PublicKey) { copy(l[off:off+32], k[:]) }
