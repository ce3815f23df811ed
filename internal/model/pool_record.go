package model

import "time"

// PoolRecord is the static description of a pool kept alongside snapshots.
type PoolRecord struct {
	Address       string
	Kind          Kind
	BaseMint      string
	QuoteMint     string
	BaseVault     string
	QuoteVault    string
	BaseDecimals  uint8
	QuoteDecimals uint8
	FirstSeen     time.Time
}
