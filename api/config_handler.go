// Configuration inspection endpoints.
package api

import (
	"net/http"

	"github.com/seenimoa/newsboard/internal/config"
)

// ConfigResponse is the JSON envelope returned by GET /api/v1/config.
type ConfigResponse struct {
	Config     config.Config `json:"config"`
	ConfigFile string        `json:"config_file"` // suggested user config path
}

// handleGetConfig returns the running configuration with secrets masked.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			Config:     redact(*s.cfg),
			ConfigFile: config.DefaultPath(),
		},
	})
}

// handleGetConfigKeys returns the status of all sensitive API keys.
func (s *Server) handleGetConfigKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    config.CheckAPIKeys(s.cfg),
	})
}

// redact returns a copy of cfg safe to show to clients.
func redact(cfg config.Config) config.Config {
	if cfg.Sources.Finnhub.APIKey != "" {
		cfg.Sources.Finnhub.APIKey = "***"
	}
	cfg.Sources.Order = append([]string(nil), cfg.Sources.Order...)
	return cfg
}
