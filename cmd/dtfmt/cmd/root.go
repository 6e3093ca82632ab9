// Package cmd implements the dtfmt command line.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndewijer/datetime-formatter/internal/config"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/service"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	now     func() time.Time
	localTZ string
	format  string

	svc *service.DateTimeService
}

func Execute() error {
	root := newRootCmd(time.Now)
	if err := root.Execute(); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:   "dtfmt",
		Short: "Convert and format dates across timezones",
		Long: `dtfmt converts date-like values to UTC, ISO-8601, local time or any
IANA timezone and renders them with moment-style patterns
(YYYY-MM-DD HH:mm:ss).

Defaults are read from the environment (.env supported):
  DATETIME_DEFAULT_FORMAT  - pattern used when --format is omitted
  DATETIME_LOCAL_TIMEZONE  - zone treated as local time`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.localTZ, "local-tz", "", "IANA zone treated as local time (default: DATETIME_LOCAL_TIMEZONE or host zone)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output pattern (default: DATETIME_DEFAULT_FORMAT or YYYY-MM-DD HH:mm:ss)")

	rootCmd.AddCommand(
		a.nowCmd(),
		a.timestampCmd(),
		a.utcCmd(),
		a.isoCmd(),
		a.localCmd(),
		a.zoneCmd(),
		a.filterCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc := cfg.DateTime.Location
	if a.localTZ != "" {
		if loc, err = datetime.LoadLocation(a.localTZ); err != nil {
			return err
		}
	}

	formatter := datetime.New(
		datetime.WithClock(a.now),
		datetime.WithLocation(loc),
		datetime.WithDefaultFormat(cfg.DateTime.DefaultFormat),
	)
	a.svc = service.NewDateTimeService(formatter, nil)
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
