package company

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	list := Default()
	if len(list) != 10 {
		t.Fatalf("expected 10 companies, got %d", len(list))
	}
	if list[0].Name != "Comstock" || list[0].Ticker != "LODE" {
		t.Errorf("first entry: got %+v", list[0])
	}
	last := list[len(list)-1]
	if last.DisplayName() != "Diageo PLC (DEO)" {
		t.Errorf("last entry: got %q", last.DisplayName())
	}
	if last.CIK != "0000914208" {
		t.Errorf("Diageo CIK: got %q", last.CIK)
	}

	// London listings carry no CIK.
	for _, c := range list {
		if c.Exchange == "LSE" && c.HasCIK() {
			t.Errorf("%s: LSE listing should have no CIK", c.Name)
		}
		if c.IRURL == "" {
			t.Errorf("%s: missing IR URL", c.Name)
		}
	}
}

func TestParseSplitsDisplayName(t *testing.T) {
	list, err := Parse([]byte(`[{"name":"Diageo PLC (DEO)"},{"name":"Kaspi.kz","ticker":" kspi "}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if list[0].Name != "Diageo PLC" || list[0].Ticker != "DEO" {
		t.Errorf("split: got %+v", list[0])
	}
	if list[1].Ticker != "KSPI" {
		t.Errorf("normalize: got %q", list[1].Ticker)
	}
}

func TestParseDisplayNameWithExplicitTicker(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantName   string
		wantTicker string
	}{
		{"same ticker", `[{"name":"Diageo PLC (DEO)","ticker":"DEO"}]`, "Diageo PLC", "DEO"},
		{"explicit ticker wins", `[{"name":"Diageo PLC (DGE)","ticker":"deo"}]`, "Diageo PLC", "DEO"},
		{"no embedded ticker", `[{"name":"Diageo PLC","ticker":"DEO"}]`, "Diageo PLC", "DEO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Parse([]byte(tt.data), FormatJSON)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			c := list[0]
			if c.Name != tt.wantName || c.Ticker != tt.wantTicker {
				t.Errorf("got name %q ticker %q, want %q %q", c.Name, c.Ticker, tt.wantName, tt.wantTicker)
			}
			if got := c.DisplayName(); got != tt.wantName+" ("+tt.wantTicker+")" {
				t.Errorf("DisplayName = %q", got)
			}
		})
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", `[]`},
		{"missing name", `[{"ticker":"X"}]`},
		{"bad cik", `[{"name":"X","cik":"12a"}]`},
		{"bad ir url", `[{"name":"X","ir_url":"ftp://example.com"}]`},
		{"malformed", `{"name":"X"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), FormatJSON); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.yaml")
	content := `
- name: Rightmove
  ticker: RMV
  exchange: lse
  ir_url: https://plc.rightmove.co.uk/
- name: "MercadoLibre (MELI)"
  cik: "0001099590"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(list))
	}
	if list[0].Exchange != "LSE" {
		t.Errorf("Exchange: got %q", list[0].Exchange)
	}
	if list[1].Name != "MercadoLibre" || list[1].Ticker != "MELI" || list[1].CIK != "0001099590" {
		t.Errorf("second entry: got %+v", list[1])
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.json")
	if err := os.WriteFile(path, []byte(`[{"name":"IAC Inc.","ticker":"IAC"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if list[0].Ticker != "IAC" {
		t.Errorf("got %+v", list[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/companies.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Duolingo","ticker":"DUOL","ir_url":"https://investors.duolingo.com/news"}]`))
	}))
	defer srv.Close()

	list, err := LoadURL(context.Background(), srv.URL+"/companies.json")
	if err != nil {
		t.Fatalf("LoadURL: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Duolingo" {
		t.Errorf("got %+v", list)
	}
}

func TestLoadURLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := LoadURL(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 404")
	}
	if _, err := LoadURL(context.Background(), "file:///etc/passwd"); err == nil {
		t.Error("expected error for non-http url")
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Only One"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(context.Background(), path, "http://127.0.0.1:1/unused")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("file should win over url, got %d entries", len(list))
	}

	list, err = Load(context.Background(), "", "")
	if err != nil || len(list) != 10 {
		t.Errorf("default list: %d entries, err %v", len(list), err)
	}
}
