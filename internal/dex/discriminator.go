package dex

import (
	"bytes"
	"crypto/sha256"
)

const discriminatorSize = 8

var (
	poolStateDiscriminator = accountDiscriminator("PoolState")
	ammConfigDiscriminator = accountDiscriminator("AmmConfig")
)

// accountDiscriminator is the Anchor account prefix: sha256("account:<Name>")[:8].
func accountDiscriminator(name string) [discriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var out [discriminatorSize]byte
	copy(out[:], sum[:discriminatorSize])
	return out
}

func hasDiscriminator(data []byte, want [discriminatorSize]byte) bool {
	return len(data) >= discriminatorSize && bytes.Equal(data[:discriminatorSize], want[:])
}

// PoolStateDiscriminator returns the prefix shared by CPMM and CLMM pool accounts.
func PoolStateDiscriminator() [discriminatorSize]byte { return poolStateDiscriminator }

// AmmConfigDiscriminator returns the prefix of CPMM fee config accounts.
func AmmConfigDiscriminator() [discriminatorSize]byte { return ammConfigDiscriminator }
