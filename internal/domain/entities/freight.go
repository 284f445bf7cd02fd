package entities

// FreightQuote is a priced, timed shipping option returned by the carrier
// integration for a given postal code.

type FreightQuote struct {
	ServiceName  string `json:"service_name"`
	PriceCents   int64  `json:"price_cents"`
	DeliveryDays int    `json:"delivery_days"`
	Index        int    `json:"index"`
}

// FreightSelection holds the quotes fetched for a postal code plus the index
// the user picked. It lives in the session store so the selected price and
// term survive navigation; quotes are only re-fetched when the postal code
// changes.

type FreightSelection struct {
	PostalCode    string         `json:"postal_code"`
	Quotes        []FreightQuote `json:"quotes"`
	SelectedIndex int            `json:"selected_index"`
}

func (s FreightSelection) HasSelection() bool {
	return s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Quotes)
}

// Selected returns the chosen quote; callers must check HasSelection first.
func (s FreightSelection) Selected() FreightQuote {
	return s.Quotes[s.SelectedIndex]
}
