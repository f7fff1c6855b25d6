// Package cmd wires configuration, the page source, the navigation engine
// and the terminal UI together behind the texttv command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"texttv/internal/config"
	"texttv/internal/eventbus"
	"texttv/internal/history"
	"texttv/internal/navigation"
	"texttv/internal/source"
	"texttv/internal/ui"
)

type options struct {
	page       int
	configPath string
	pagesDir   string
	debug      bool
}

// NewRootCommand builds the texttv command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "texttv",
		Short:         "Läs SVT Text i terminalen",
		Long:          "texttv visar SVT Text-TV sidor 100-999 i terminalen.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.page, "page", "p", 0, "start page (100-999)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.pagesDir, "pages-dir", "", "read pages from <dir>/<n>.html instead of the network")
	flags.BoolVar(&opts.debug, "debug", false, "log every fetch")

	return cmd
}

// Execute runs the root command and exits on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(parent context.Context, cmd *cobra.Command, opts *options) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("page") {
		if err := source.ValidateNumber(opts.page); err != nil {
			return err
		}
		cfg.StartPage = opts.page
	}
	if opts.pagesDir != "" {
		cfg.Source.PagesDir = opts.pagesDir
	}

	// Set up logging
	closeLog := openLog(cfg.LogFile)
	defer closeLog()
	if loadErr != nil {
		log.Printf("Error loading config %s: %v", configPath, loadErr)
	}
	log.Printf("texttv starting at page %d (config %s)", cfg.StartPage, configPath)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := navigation.New(
		newSource(cfg, opts.debug),
		navigation.WithBus(bus),
		navigation.WithHistory(history.NewLog(cfg.UI.HistoryLimit)),
		navigation.WithStartPage(cfg.StartPage),
	)

	// Create UI model
	uiModel := ui.NewModel(ctx, bus, cfg, engine)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventPageSearch,
		eventbus.EventPageLoaded,
		eventbus.EventPageFailed,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	// Run the UI
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// newSource builds the page source chain: network or directory, behind a cache
func newSource(cfg *config.Config, debug bool) source.Source {
	var base source.Source
	if cfg.Source.PagesDir != "" {
		log.Printf("Reading pages from %s", cfg.Source.PagesDir)
		base = source.NewDirSource(afero.NewOsFs(), cfg.Source.PagesDir, cfg.Source.Charset)
	} else {
		base = source.NewHTTPSource(cfg.Source.BaseURL,
			source.WithTimeout(cfg.Source.Timeout()),
			source.WithCharset(cfg.Source.Charset),
			source.WithUserAgent(cfg.Source.UserAgent),
			source.WithDebug(debug),
		)
	}
	if cfg.Source.CacheSize <= 0 {
		return base
	}
	return source.NewCachedSource(base, cfg.Source.CacheSize, cfg.Source.CacheTTL(), debug)
}

// openLog redirects the standard logger to path and returns a closer
func openLog(path string) func() {
	if path == "" {
		// stderr belongs to the terminal UI
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Could not create log directory: %v", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}
