// newsboard builds an investor news dashboard for a list of listed companies.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/newsboard/api"
	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/config"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/internal/render"
	"github.com/seenimoa/newsboard/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set by the root command.
var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newsboard",
	Short: "Investor news dashboard for listed companies",
	Long: `newsboard looks up the latest news for each company on a list,
trying several sources in priority order, labels each headline with a
keyword-based impact, and renders one card per company as an HTML page,
terminal output, or a small HTTP service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		config.ResolveKeys(cfg)

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		logger = infra.NewLogger(os.Stderr, level, cfg.Logging.Format)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("companies", "", "company list file (.json, .yaml); overrides companies.file")
	rootCmd.PersistentFlags().String("lang", "", "output language override (en, de)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(keysCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsboard %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Render Command ---

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Look up news and write the HTML dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		if out == "" {
			out = cfg.Render.Output
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		d := a.dashboard(cmd.Context())

		w := os.Stdout
		if out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		switch strings.ToLower(format) {
		case "html", "":
			err = render.HTML(w, d, a.renderOpts)
		case "json":
			err = render.JSON(w, d, a.renderOpts)
		default:
			return fmt.Errorf("unknown format %q (want html or json)", format)
		}
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if out != "-" {
			logger.Info("dashboard written", "file", out, "companies", len(d.Entries), "news", d.NewsCount())
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file, - for stdout (default: render.output)")
	renderCmd.Flags().String("format", "html", "output format: html or json")
}

// --- Show Command ---

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Look up news and print the dashboard to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return render.Text(os.Stdout, a.dashboard(cmd.Context()), a.renderOpts)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server; every page load runs a fresh lookup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.API.Port = port
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if lang := a.renderOpts.Language; lang != "" {
			cfg.Render.Language = lang
		}

		infos := make([]provider.SourceInfo, 0, len(a.sources))
		for _, s := range a.sources {
			infos = append(infos, s.Info())
		}
		srv := api.NewServer(api.Options{
			Config:    cfg,
			Loader:    a.loader,
			Companies: a.companies,
			Sources:   infos,
			Registry:  a.registry,
			Logger:    logger,
			Version:   version,
		})
		return srv.ListenAndServe(fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port))
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default: api.port)")
}

// --- Companies Command ---

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Print the resolved company list",
	RunE: func(cmd *cobra.Command, args []string) error {
		companies, err := loadCompanies(cmd)
		if err != nil {
			return err
		}
		for i, c := range companies {
			fmt.Printf("%2d. %-45s %-6s %-10s %s\n", i+1, c.DisplayName(), c.Exchange, c.CIK, c.IRURL)
		}
		return nil
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, source order and API key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  newsboard status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:       %s (%s)\n", version, commit)
		fmt.Printf("  Config file:   %s\n", config.DefaultPath())
		fmt.Println()

		fmt.Println("  Lookup:")
		fmt.Printf("    Mode:          %s\n", cfg.Lookup.Mode)
		fmt.Printf("    Pause:         %dms\n", cfg.Lookup.PauseMS)
		fmt.Printf("    Concurrency:   %d\n", cfg.Lookup.Concurrency)
		fmt.Printf("    Timeout:       %ds\n", cfg.Lookup.TimeoutSec)
		fmt.Printf("    Fallback:      %s\n", cfg.Lookup.Fallback)
		fmt.Printf("    Language:      %s\n", cfg.Render.Language)
		fmt.Printf("    API Server:    %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Println()

		reg, sources, err := buildSources()
		if err != nil {
			return err
		}
		active := make(map[string]bool, len(sources))
		fmt.Println("  Sources (priority order):")
		for i, s := range sources {
			info := s.Info()
			active[info.Name] = true
			fmt.Printf("    %d. %-12s needs %-8s %s\n", i+1, info.Name, requires(info), info.Description)
		}
		for _, info := range reg.List() {
			if !active[info.Name] {
				fmt.Printf("    -  %-12s needs %-8s %s (not in order)\n", info.Name, requires(info), info.Description)
			}
		}
		fmt.Println()

		fmt.Println("  Impact rules (first match wins):")
		for _, r := range impact.Rules() {
			fmt.Printf("    %-9s %d keywords\n", r.Impact, len(r.Keywords))
		}
		fmt.Println("  Badges:")
		for _, i := range models.AllImpacts() {
			fmt.Printf("    %-9s %s\n", i, render.Badge(cfg.Render.Language, i))
		}
		fmt.Println()

		fmt.Println("  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "❌ not set"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-25s %s\n", k.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

// --- Keys Command ---

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage source API keys in the OS keyring",
}

var keysSetCmd = &cobra.Command{
	Use:   "set <source> [key]",
	Short: "Store an API key (reads stdin when key is omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) == 2 {
			value = args[1]
		} else {
			if _, err := fmt.Fscanln(cmd.InOrStdin(), &value); err != nil {
				return fmt.Errorf("read key: %w", err)
			}
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("empty key")
		}
		if err := config.SetKey(args[0], value); err != nil {
			return err
		}
		fmt.Printf("✅ stored %s key in the %q keyring\n", args[0], config.KeyringService)
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <source>",
	Short: "Remove an API key from the keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DeleteKey(args[0]); err != nil {
			return err
		}
		fmt.Printf("🗑️  removed %s key\n", args[0])
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysDeleteCmd)
}

func requires(info provider.SourceInfo) string {
	needs := make([]string, 0, len(info.Requires))
	for _, f := range info.Requires {
		needs = append(needs, string(f))
	}
	return strings.Join(needs, ",")
}

// commandContext bounds a whole dashboard load by lookup.timeout_sec.
func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if cfg.Lookup.TimeoutSec <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, time.Duration(cfg.Lookup.TimeoutSec)*time.Second)
}
