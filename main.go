// AgentHub: terminal operations dashboard for a simulated AI agent.
//
// Four tabs share one status bar:
//   - Agent Chat: conversation with scripted agent replies
//   - Tool Execution: live tracker for queued/running/completed/failed tools
//   - Cloud Services: service health, usage and monthly cost
//   - Performance: KPI tiles
//
// Run: go run . [--config agenthub.yaml] [--screenshot]

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"agenthub/internal/config"
	"agenthub/internal/logger"
	"agenthub/internal/tui"
)

var version = "dev"

var (
	cfgFile    string
	tickEvery  time.Duration
	seed       int64
	retention  int
	logLevel   string
	logJSON    bool
	logFile    string
	screenshot bool
	shotTab    string
	shotTicks  int
)

var rootCmd = &cobra.Command{
	Use:   "agenthub",
	Short: "AgentHub - AI agent operations dashboard",
	Long: `AgentHub is a terminal dashboard for a simulated AI agent. It tracks tool
executions as they move from queued to completed, holds a conversation with
the agent, and shows cloud service health and performance KPIs.

Key bindings:
  Tab/Shift+Tab  Switch tabs (1-4 jump outside chat)
  Enter          Send message
  n              Invoke a simulated tool
  x              Fail the selected running tool
  r              Advance the tracker now
  q/Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("AgentHub %s\n", version)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	f.DurationVar(&tickEvery, "tick", 0, "tracker tick interval (overrides config)")
	f.Int64Var(&seed, "seed", 0, "random seed for deterministic runs (overrides config)")
	f.IntVar(&retention, "retention", 0, "max finished executions kept, 0 keeps all (overrides config)")
	f.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	f.StringVar(&logFile, "log-file", "", "append logs to this file")
	f.BoolVar(&screenshot, "screenshot", false, "render one frame to stdout and exit")
	f.StringVar(&shotTab, "tab", "2", "tab to render with --screenshot (1-4)")
	f.IntVar(&shotTicks, "ticks", 3, "tracker ticks to run before --screenshot renders")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg, err := config.Load(cfgFile, flags.Changed("config"))
	if err != nil {
		return nil, err
	}
	if flags.Changed("tick") {
		cfg.TickInterval = tickEvery
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("retention") {
		cfg.Retention = retention
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = logJSON
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := tui.Options{Config: cfg, Logger: log}

	// --screenshot: render one frame to stdout and exit (for captures)
	if screenshot {
		tab, err := tui.ParseTab(shotTab)
		if err != nil {
			return err
		}
		frame, err := tui.RenderFrame(opts, tab, 160, 50, shotTicks)
		if err != nil {
			return err
		}
		fmt.Println(frame)
		return nil
	}

	log.Info("starting agenthub", "version", version, "config", cfgFile)
	return tui.Run(opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
