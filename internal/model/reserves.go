package model

// TokenAmount is a raw token account balance with its mint decimals.
type TokenAmount struct {
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// Reserves holds the vault balances of a constant-product pool at query time.
type Reserves struct {
	Base  TokenAmount `json:"base"`
	Quote TokenAmount `json:"quote"`
}
