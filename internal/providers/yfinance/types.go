package yfinance

// searchResponse wraps the v1 search API response.
type searchResponse struct {
	Quotes []searchQuote `json:"quotes"`
	News   []searchNews  `json:"news"`
}

type searchQuote struct {
	Exchange  string `json:"exchange"`
	ShortName string `json:"shortname"`
	QuoteType string `json:"quoteType"`
	Symbol    string `json:"symbol"`
}

type searchNews struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Type                string `json:"type"`
	Summary             string `json:"summary"`
}
