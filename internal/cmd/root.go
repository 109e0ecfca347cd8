package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/vlist/internal/data"
	"github.com/taigrr/vlist/internal/geometry"
	"github.com/taigrr/vlist/internal/log"
	"github.com/taigrr/vlist/internal/ui/feed"
)

var rootCmd = &cobra.Command{
	Use:   "vlist",
	Short: "Infinite-scroll feed demo for the windowing engine",
	Long: `vlist renders an endless feed of uniform-height rows inside the
terminal, fetching pages on demand as you approach the bottom. Only the
rows near the viewport are ever rendered.`,
	Example: `
# Run with defaults
vlist

# Taller rows, snappier fake network
vlist --row-height 3 --latency 150ms
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		rowHeight, _ := flags.GetFloat64("row-height")
		rowMargin, _ := flags.GetFloat64("row-margin")
		threshold, _ := flags.GetFloat64("threshold")
		pageSize, _ := flags.GetInt("page-size")
		total, _ := flags.GetInt("total")
		latency, _ := flags.GetDuration("latency")
		logFile, _ := flags.GetString("log-file")
		debug, _ := flags.GetBool("debug")

		if err := log.Setup(logFile, debug); err != nil {
			return err
		}

		f := feed.New(feed.Config{
			Layout:    geometry.Layout{ItemHeight: rowHeight, ItemMargin: rowMargin},
			Threshold: threshold,
			Source:    data.NewSource(pageSize, total, latency),
		})

		if _, err := tea.NewProgram(f).Run(); err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64("row-height", 2, "row height in terminal rows")
	flags.Float64("row-margin", 1, "gap between rows in terminal rows")
	flags.Float64("threshold", 0, "near-end slack in rows (0 uses the default)")
	flags.Int("page-size", 25, "entries per fetched page")
	flags.Int("total", 500, "total entries the fake source serves")
	flags.Duration("latency", 600*time.Millisecond, "simulated fetch latency")
	flags.String("log-file", defaultLogFile(), "log file path")
	flags.Bool("debug", false, "log debug records")
}

// defaultLogFile keeps logs out of the working directory: under the
// user cache dir when one resolves, the temp dir otherwise.
func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "vlist", "vlist.log")
	}
	return filepath.Join(os.TempDir(), "vlist.log")
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
