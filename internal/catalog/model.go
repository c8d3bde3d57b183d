// Package catalog exposes a static reference table of tradeable instruments
// (FIIs, stocks, ETFs and crypto) used by the frontend for autocompletion and
// by the type-suggestion endpoint.
package catalog

// Instrument is a single entry of the reference table.
type Instrument struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Country  string `json:"country"`
	ImageURL string `json:"imageUrl"`
}

// Instrument types present in the table.
const (
	TypeFII    = "FII"
	TypeStock  = "AÇÃO"
	TypeETF    = "ETF"
	TypeCrypto = "CRIPTO"
)
