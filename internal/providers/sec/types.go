package sec

// submissionsResponse is the subset of data.sec.gov/submissions we read.
type submissionsResponse struct {
	CIK     string   `json:"cik"`
	Name    string   `json:"name"`
	Tickers []string `json:"tickers"`
	Filings filings  `json:"filings"`
}

type filings struct {
	Recent filingSet `json:"recent"`
}

// filingSet holds the recent filings as parallel arrays, newest first.
type filingSet struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	Description     []string `json:"primaryDocDescription"`
}

type filing struct {
	Form        string
	FilingDate  string
	Description string
}

func (s filingSet) first() *filing {
	if len(s.Form) == 0 || s.Form[0] == "" {
		return nil
	}
	f := &filing{Form: s.Form[0]}
	if len(s.FilingDate) > 0 {
		f.FilingDate = s.FilingDate[0]
	}
	if len(s.Description) > 0 {
		f.Description = s.Description[0]
	}
	return f
}
