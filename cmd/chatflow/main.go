package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/chatflow/internal/config"
	"github.com/san-kum/chatflow/internal/content"
	"github.com/san-kum/chatflow/internal/landing"
	"github.com/san-kum/chatflow/internal/logging"
	"github.com/san-kum/chatflow/internal/router"
	"github.com/san-kum/chatflow/internal/timeline"
)

var (
	configFile  string
	preset      string
	logDir      string
	logLevel    string
	contentFile string

	format   string
	outFile  string
	script   string
	plot     bool
	force    bool
	themeArg string
)

// main registers the commands and flags, launches the landing page when
// no subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "chatflow",
		Short:        "the ChatFlow landing page in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage("/")
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", ".chatflow", "log directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "page content file (yaml)")
	rootCmd.PersistentFlags().StringVar(&themeArg, "theme", "", "color theme")

	openCmd := &cobra.Command{
		Use:   "open [path]",
		Short: "open the app at a route, e.g. /chat/42",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(args[0])
		},
	}

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "list routes of the app shell",
		RunE:  listRoutes,
	}

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "replay the chat preview on a virtual clock and print every frame",
		RunE:  runTimeline,
	}
	timelineCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	timelineCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")
	timelineCmd.Flags().StringVar(&script, "text", "", "text to reveal instead of the page's reply")
	timelineCmd.Flags().BoolVar(&plot, "plot", false, "plot revealed characters over time")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		RunE:  showConfig,
	}
	configCmd.AddCommand(configInitCmd, configShowCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(openCmd, routesCmd, timelineCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --preset, then --config, then the defaults. --theme
// overrides whichever was chosen.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	default:
		cfg = config.DefaultConfig()
	}
	if themeArg != "" {
		cfg.Theme = themeArg
	}
	return cfg, nil
}

func loadPage(cfg *config.Config) (*content.Page, error) {
	path := contentFile
	if path == "" {
		path = cfg.Content
	}
	if path == "" {
		return content.Default(), nil
	}
	page, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return page, nil
}

func runPage(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	page, err := loadPage(cfg)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, err := logging.Open(logDir, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()

	logger.Info("starting", "path", path, "theme", cfg.Theme, "preset", preset)
	err = landing.Run(landing.Options{
		Config: cfg,
		Page:   page,
		Router: router.Default(),
		Path:   path,
		Logger: logger.Logger,
	})
	if err != nil {
		logger.Error("page exited", "err", err)
	}
	return err
}

func listRoutes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATTERN")
	for _, rt := range router.Default().Routes() {
		fmt.Fprintf(w, "%s\t%s\n", rt.Name, rt.Pattern)
	}
	return w.Flush()
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text := script
	if !cmd.Flags().Changed("text") {
		page, err := loadPage(cfg)
		if err != nil {
			return err
		}
		if text, err = page.Conversation.Reply(); err != nil {
			return err
		}
	}

	rec, err := timeline.Record(text, cfg.PreviewOptions(), timeline.DefaultLimit)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := timeline.Export(out, rec, format); err != nil {
		return err
	}

	if plot && len(rec.Frames) > 1 {
		shown := make([]float64, len(rec.Frames))
		for i, f := range rec.Frames {
			shown[i] = float64(f.Shown)
		}
		graph := asciigraph.Plot(shown,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("characters shown (done at %v)", rec.Final().At)),
		)
		fmt.Fprintln(os.Stderr, graph)
	}
	if outFile != "" {
		fmt.Printf("wrote %d frames to %s\n", len(rec.Frames), outFile)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "chatflow.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPING\tTICK\tCHARS/TICK\tTHRESHOLD\tSETTLE\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dms\t%dms\t%d\t%.2f\t%dms\t%s\n", name,
			p.Preview.TypingDelayMs, p.Preview.TickIntervalMs, p.Preview.CharsPerTick,
			p.Reveal.Threshold, p.Reveal.SettleMs, p.Theme)
	}
	return w.Flush()
}
