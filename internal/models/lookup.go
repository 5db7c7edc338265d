package models

// LookupEntry is one row of a dictionary overview table.
type LookupEntry struct {
	Latin       string
	Type        string
	FlexionType string
	Form        string
	German      string
}

type Classification struct {
	Category   Category `json:"category"`
	Inflection string   `json:"inflection,omitempty"`
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}
