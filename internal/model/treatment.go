package model

// Treatment is a price-catalog entry. DefaultPrice is in integer currency
// units and pre-fills the cost field when a clinical record is created.
type Treatment struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DefaultPrice int64  `json:"default_price"`
}
