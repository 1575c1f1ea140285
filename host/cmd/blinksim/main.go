package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"picoblink/core"
	"picoblink/host/config"
	"picoblink/host/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		duration       time.Duration
		interval       time.Duration
		threshold      uint8
		configPath     string
		failScheduleAt time.Duration
		failToggle     bool
		trace          bool
	)

	cmd := &cobra.Command{
		Use:   "blinksim",
		Short: "Run the LED blink firmware against a simulated RP2040",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if duration < 0 || failScheduleAt < 0 {
				return fmt.Errorf("--duration and --fail-schedule-at must not be negative")
			}

			cfg := core.DefaultConfig()
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return err
				}
				cfg, err = config.LoadConfig(data)
				if err != nil {
					return fmt.Errorf("config %s: %w", configPath, err)
				}
			}
			if cmd.Flags().Changed("interval") {
				cfg.AlarmInterval = interval
			}
			if cmd.Flags().Changed("threshold") {
				cfg.DividerThreshold = threshold
			}

			out := cmd.OutOrStdout()
			core.ClearTimingRing()
			if trace {
				core.SetDebugWriter(func(s string) { fmt.Fprintln(out, s) })
				defer core.SetDebugWriter(func(string) {})
			}

			res, err := sim.Run(cfg, sim.Options{
				Duration:       duration,
				FailScheduleAt: failScheduleAt,
				FailToggle:     failToggle,
			})
			if err != nil {
				return err
			}

			printResult(out, cfg, res)
			if trace {
				core.DumpTimingRing()
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.DurationVarP(&duration, "duration", "d", time.Second, "virtual time to simulate")
	flags.DurationVar(&interval, "interval", core.AlarmInterval, "alarm re-arm interval")
	flags.Uint8Var(&threshold, "threshold", core.DividerThreshold, "divider threshold (toggle every threshold+1 firings)")
	flags.StringVarP(&configPath, "config", "c", "", "JSON configuration file")
	flags.DurationVar(&failScheduleAt, "fail-schedule-at", 0, "make the alarm reject deadlines from this virtual time on")
	flags.BoolVar(&failToggle, "fail-toggle", false, "make every LED toggle fail")
	flags.BoolVar(&trace, "trace", false, "dump the timing ring after the run")

	return cmd
}

func printResult(w io.Writer, cfg core.Config, res *sim.Result) {
	fmt.Fprintf(w, "interval=%v threshold=%d toggle period=%v\n",
		cfg.AlarmInterval, cfg.DividerThreshold, cfg.TogglePeriod())

	for _, tr := range res.Transitions {
		level := "off"
		if tr.Level {
			level = "on"
		}
		fmt.Fprintf(w, "%10v  led %s\n", tr.At, level)
	}

	s := res.Stats
	fmt.Fprintf(w, "elapsed=%v firings=%d toggles=%d counter=%d\n",
		res.Elapsed, s.Firings, s.Toggles, s.Counter)
	fmt.Fprintf(w, "schedule_failures=%d toggle_failures=%d empty_firings=%d handle_at_rest=%t\n",
		s.ScheduleFailures, s.ToggleFailures, s.EmptyFirings, res.CellLoaded)
}
