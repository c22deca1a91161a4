package utils

import "testing"

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DEO", "DEO"},
		{"deo", "DEO"},
		{" meli ", "MELI"},
		{"$DUOL", "DUOL"},
		{"lit.l", "LIT.L"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeTicker(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		input      string
		wantName   string
		wantTicker string
	}{
		{"Diageo PLC (DEO)", "Diageo PLC", "DEO"},
		{"Litigation Capital Management (LIT.L)", "Litigation Capital Management", "LIT.L"},
		{"  Duolingo (duol) ", "Duolingo", "DUOL"},
		{"Kaspi.kz", "Kaspi.kz", ""},
		{"IAC Inc.", "IAC Inc.", ""},
		{"Weird (two words)", "Weird (two words)", ""},
		{"(DEO)", "(DEO)", ""},
		{"Empty ()", "Empty ()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, ticker := SplitDisplayName(tt.input)
			if name != tt.wantName || ticker != tt.wantTicker {
				t.Errorf("SplitDisplayName(%q) = (%q, %q), want (%q, %q)",
					tt.input, name, ticker, tt.wantName, tt.wantTicker)
			}
		})
	}
}

func TestToYFinanceTicker(t *testing.T) {
	tests := []struct {
		ticker   string
		exchange string
		expected string
	}{
		{"DEO", "NYSE", "DEO"},
		{"MELI", "NASDAQ", "MELI"},
		{"PAT", "LSE", "PAT.L"},
		{"PAT.L", "LSE", "PAT.L"},
		{"sap", "xetra", "SAP.DE"},
		{"^GSPC", "", "^GSPC"},
		{"KSPI", "", "KSPI"},
	}

	for _, tt := range tests {
		t.Run(tt.ticker+"/"+tt.exchange, func(t *testing.T) {
			result := ToYFinanceTicker(tt.ticker, tt.exchange)
			if result != tt.expected {
				t.Errorf("ToYFinanceTicker(%q, %q) = %q, want %q", tt.ticker, tt.exchange, result, tt.expected)
			}
		})
	}
}

func TestBaseTicker(t *testing.T) {
	if got := BaseTicker("LIT.L"); got != "LIT" {
		t.Errorf("BaseTicker(LIT.L) = %q, want LIT", got)
	}
	if got := BaseTicker("deo"); got != "DEO" {
		t.Errorf("BaseTicker(deo) = %q, want DEO", got)
	}
}
