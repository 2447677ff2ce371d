package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsoliveira/batchdist/app"
	"github.com/tsoliveira/batchdist/config"
	"github.com/tsoliveira/batchdist/infra/logger"
	"github.com/tsoliveira/batchdist/infra/tabfile"
)

var outPath string

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Run one distribution and write the report",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().StringVarP(&outPath, "output", "o", "", "report destination, overrides the configured path")
	rootCmd.AddCommand(allocateCmd)
}

// runAllocate is the one-shot variant of the root command: it runs the
// distribution and writes the report without serving metrics.
func runAllocate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("allocate-command").Errorf("service close: %v", err)
		}
	}()

	rep, err := svc.RunOnce()
	if err != nil {
		return err
	}
	table := rep.Table()
	if cfg.Output.Path != "" {
		return tabfile.Save(cfg.Output.Path, table)
	}
	return tabfile.Write(os.Stdout, table)
}
