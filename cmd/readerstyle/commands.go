package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/config"
	"github.com/muurk/readerstyle/internal/form"
	"github.com/muurk/readerstyle/internal/logging"
	"github.com/muurk/readerstyle/internal/preview"
	"github.com/muurk/readerstyle/internal/reader"
	"github.com/muurk/readerstyle/internal/version"
)

// Command flags
var (
	configPath   string
	catalogPath  string
	logLevel     string
	logFile      string
	articlePath  string
	previewOn    bool
	previewAddr  string
	advertise    bool
	noMouse      bool
	outputFormat string
	scanTimeout  int
	forceInit    bool
)

// Preview shutdown timeout
const shutdownTimeout = 5 * time.Second

func init() {
	// Common flags (persistent on root)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default: $XDG_CONFIG_HOME/readerstyle/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML option catalog replacing the built-in one")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty is silent")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().StringVar(&articlePath, "article", "", "Text file to read (first line \"# Title\" sets the title)")
	rootCmd.Flags().BoolVar(&previewOn, "preview", false, "Serve applied configurations to browsers")
	rootCmd.Flags().StringVar(&previewAddr, "addr", "", "Preview listen address (default 127.0.0.1:7420)")
	rootCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the preview hub over mDNS")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse reporting")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(discoverCmd)
}

// loadPreferences reads the preferences file and applies command-line
// overrides on top of it.
func loadPreferences(cmd *cobra.Command) (*config.Config, error) {
	var (
		prefs *config.Config
		err   error
	)
	if configPath != "" {
		prefs, err = config.LoadFrom(configPath)
	} else {
		prefs, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	applyFlagOverrides(cmd, prefs)
	return prefs, nil
}

// applyFlagOverrides copies every flag the user set into prefs.
func applyFlagOverrides(cmd *cobra.Command, prefs *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		prefs.Reader.CatalogPath = catalogPath
	}
	if flags.Changed("article") {
		prefs.Reader.ArticlePath = articlePath
	}
	if flags.Changed("no-mouse") {
		prefs.Reader.Mouse = !noMouse
	}
	if flags.Changed("preview") {
		prefs.Preview.Enabled = previewOn
	}
	if flags.Changed("addr") {
		prefs.Preview.Addr = previewAddr
	}
	if flags.Changed("advertise") {
		prefs.Preview.Advertise = advertise
		if advertise {
			prefs.Preview.Enabled = true
		}
	}
	if flags.Changed("log-level") {
		prefs.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		prefs.Logging.File = logFile
	}
}

// setupLogging initializes zap from prefs. With screen set, stdout belongs
// to the reader, so logs go to a file in the config directory unless one was
// named.
func setupLogging(prefs *config.Config, screen bool) error {
	level := prefs.Logging.Level
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if level == "" {
		return logging.Initialize("")
	}

	path := prefs.Logging.File
	if path == "" && screen {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		path = filepath.Join(dir, "readerstyle.log")
	}
	return logging.InitializeFile(path, level)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

// startPreview starts the hub and, when asked, announces it. The returned
// function stops both.
func startPreview(prefs *config.Config, initial catalog.Configuration) (*preview.Hub, *preview.Server, func(), error) {
	hub := preview.NewHub()
	srv := preview.NewServer(prefs.Preview.Addr, hub)
	if err := srv.Start(); err != nil {
		return nil, nil, nil, err
	}
	hub.Publish(initial)

	withdraw := func() {}
	if prefs.Preview.Advertise {
		txt := []string{"version=" + version.Version, "path=/"}
		stop, err := preview.Advertise(prefs.Preview.ServiceName, srv.Port(), txt)
		if err != nil {
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			withdraw = stop
			logging.Info("Preview hub advertised",
				zap.String("service", preview.ServiceType),
				zap.String("name", prefs.Preview.ServiceName),
			)
		}
	}

	stop := func() {
		withdraw()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Warn("Preview shutdown failed", zap.Error(err))
		}
	}
	return hub, srv, stop, nil
}

func runReader(cmd *cobra.Command, args []string) error {
	prefs, err := loadPreferences(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(prefs, true); err != nil {
		return err
	}
	defer logging.Sync()

	cat, err := loadCatalog(prefs.Reader.CatalogPath)
	if err != nil {
		return err
	}

	var article reader.Article
	if prefs.Reader.ArticlePath != "" {
		article, err = reader.LoadArticle(prefs.Reader.ArticlePath)
		if err != nil {
			return err
		}
	}

	var onApply form.ApplyFunc
	if prefs.Preview.Enabled {
		hub, srv, stop, err := startPreview(prefs, cat.Default())
		if err != nil {
			return err
		}
		defer stop()
		onApply = hub.Publish
		logging.Info("Preview available", zap.String("url", "http://"+srv.Addr()+"/"))
	}

	m := reader.New(reader.Options{
		Catalog: cat,
		Article: article,
		OnApply: onApply,
	})
	defer m.Close()

	var opts []tea.ProgramOption
	if prefs.Reader.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if prefs.Reader.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("reader error: %w", err)
	}
	return nil
}

// catalogCmd prints the option catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the option catalog",
	Long: `Print the options offered by the settings panel and their defaults.

The YAML output is a valid catalog file: save it, edit it and pass it back
with --catalog to change what the panel offers.`,
	Example: `  # Human-readable listing
  readerstyle catalog

  # Start a custom catalog from the built-in one
  readerstyle catalog --format yaml > my-catalog.yaml
  readerstyle --catalog my-catalog.yaml`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, yaml, json)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	prefs, err := loadPreferences(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(prefs.Reader.CatalogPath)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(cat)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(cat.File(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		printCatalog(cat)
	default:
		return fmt.Errorf("unknown format %q (expected text, yaml or json)", outputFormat)
	}
	return nil
}

func printCatalog(cat *catalog.Catalog) {
	def := cat.Default()
	for _, f := range catalog.Fields {
		fmt.Printf("%s (%s)\n", f.Title(), f)
		for _, opt := range cat.Options(f) {
			marker := " "
			if opt.Value == def.Get(f).Value {
				marker = "*"
			}
			fmt.Printf("  %s %-20s %s\n", marker, opt.Value, opt.Label)
		}
		fmt.Println()
	}
	fmt.Println("* default")
}

// configCmd manages the preferences file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
	Long: `Manage readerstyle's preferences file.

Preferences cover the catalog and article paths, mouse and screen modes,
the preview hub and logging. Article settings chosen in the panel are not
stored.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := preferencesPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := loadPreferences(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := preferencesPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("preferences file already exists: %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot access preferences file: %w", err)
		}

		if err := config.Default().SaveTo(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func preferencesPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// previewCmd runs the preview hub without the reader
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the preview hub only",
	Long: `Serve the preview page and WebSocket hub without opening the reader.

Browsers connected to the page receive the catalog's default configuration.
Use this to check the page or the mDNS announcement from another machine.`,
	Example: `  # Serve on the default address
  readerstyle preview

  # Listen on all interfaces and announce the hub
  readerstyle preview --addr :7420 --advertise`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewAddr, "addr", "", "Listen address (default 127.0.0.1:7420)")
	previewCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the hub over mDNS")
}

func runPreview(cmd *cobra.Command, args []string) error {
	prefs, err := loadPreferences(cmd)
	if err != nil {
		return err
	}
	if prefs.Logging.Level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		prefs.Logging.Level = "info"
	}
	if err := setupLogging(prefs, false); err != nil {
		return err
	}
	defer logging.Sync()

	cat, err := loadCatalog(prefs.Reader.CatalogPath)
	if err != nil {
		return err
	}

	_, srv, stop, err := startPreview(prefs, cat.Default())
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("Preview hub listening on http://%s/ (Ctrl+C to stop)\n", srv.Addr())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	fmt.Println("\nShutting down...")
	return nil
}

// discoverCmd finds preview hubs on the network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find preview hubs on the network",
	Long: `Browse the local network for readerstyle preview hubs announced over
mDNS/DNS-SD and print their addresses.`,
	Example: `  # Browse for 5 seconds (default)
  readerstyle discover

  # Longer browse on busy networks
  readerstyle discover --timeout 15`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", int(preview.DefaultScanTimeout/time.Second), "Browse timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	fmt.Printf("Browsing for preview hubs (timeout: %ds)...\n\n", scanTimeout)

	endpoints, err := preview.Discover(cmd.Context(), time.Duration(scanTimeout)*time.Second)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(endpoints) == 0 {
		fmt.Println("No preview hubs found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start one with 'readerstyle --advertise' or 'readerstyle preview --advertise'")
		fmt.Println("  - Listen on a reachable address, e.g. --addr :7420")
		fmt.Println("  - Try increasing --timeout")
		return nil
	}

	fmt.Printf("Found %d hub(s):\n\n", len(endpoints))
	for i, ep := range endpoints {
		fmt.Printf("%d. %s\n", i+1, ep.Instance)
		fmt.Printf("   Host:    %s\n", ep.Host)
		fmt.Printf("   URL:     %s\n", ep.URL())
		if v := ep.Metadata["version"]; v != "" {
			fmt.Printf("   Version: %s\n", v)
		}
		fmt.Println()
	}
	return nil
}
