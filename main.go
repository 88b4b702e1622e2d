package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"staffgrip/internal/config"
	"staffgrip/internal/eventbus"
	"staffgrip/internal/roster"
	"staffgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var rosterPath string
	var sampleSize int
	flag.StringVar(&rosterPath, "roster", "", "Path to a roster CSV file")
	flag.StringVar(&rosterPath, "r", "", "Path to a roster CSV file (shorthand)")
	flag.IntVar(&sampleSize, "sample", 0, "Generate a sample roster of this size instead of reading a file")
	flag.Parse()

	if rosterPath == "" && flag.NArg() > 0 {
		rosterPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("staffgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Command line overrides
	if rosterPath != "" {
		cfg.RosterPath = rosterPath
	}
	if sampleSize > 0 {
		cfg.SampleSize = sampleSize
	}

	// Configuration errors in the list geometry are fatal here, not at
	// window-computation time
	if err := cfg.Geometry(1).Validate(); err != nil {
		fmt.Printf("Invalid list configuration: %v\n", err)
		os.Exit(1)
	}

	// Create store and loader
	store := roster.NewMemoryStore()
	loader := roster.NewLoaderService(bus)

	// Create UI model
	uiModel, err := ui.NewModel(cfg, store, bus)
	if err != nil {
		fmt.Printf("Error creating UI: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	bus.Subscribe(eventbus.EventRosterLoadStarted, forwardEvent)
	bus.Subscribe(eventbus.EventRosterLoadCompleted, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	// Batches land in the store first, then get forwarded so the UI
	// re-reads a roster that already contains them
	bus.Subscribe(eventbus.EventEmployeesLoadedBatch, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.EmployeesLoadedBatchEvent); ok {
			store.SetRange(event.Offset, event.Employees)
			forwardEvent(event)
		}
	})

	bus.Subscribe(eventbus.EventRosterReloadRequested, func(e eventbus.DomainEvent) {
		store.Clear()
		if err := loader.StartLoad(ctx, cfg.RosterPath, cfg.SampleSize); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start the initial load
	if err := loader.StartLoad(ctx, cfg.RosterPath, cfg.SampleSize); err != nil {
		log.Printf("Initial load failed: %v", err)
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}
