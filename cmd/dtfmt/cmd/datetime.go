package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndewijer/datetime-formatter/internal/api/request"
)

func (a *app) nowCmd() *cobra.Command {
	var (
		tz  string
		iso bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Long: `Print the current instant. Without --tz the instant is rendered in UTC;
--iso prints it as an ISO-8601 UTC string and ignores --format and --tz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if iso {
				fmt.Fprintln(cmd.OutOrStdout(), a.svc.NowISO())
				return nil
			}
			result, err := a.svc.Now(request.NowRequest{Format: a.format, TimeZone: tz})
			return printResult(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "", "IANA zone to render the instant in")
	cmd.Flags().BoolVar(&iso, "iso", false, "print as ISO-8601 UTC")
	return cmd
}

func (a *app) timestampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timestamp",
		Short: "Print the current Unix time in milliseconds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.svc.Timestamp())
		},
	}
}

func (a *app) utcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "utc DATE",
		Short: "Render DATE in UTC (naive input is read as UTC)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.svc.ToUTC(request.DateRequest{Date: args[0], Format: a.format})
			return printResult(cmd, result, err)
		},
	}
}

func (a *app) isoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iso DATE",
		Short: "Print DATE as an ISO-8601 UTC string (naive input is read as local)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.svc.ToISO(request.DateRequest{Date: args[0]})
			return printResult(cmd, result, err)
		},
	}
}

func (a *app) localCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "local DATE",
		Short: "Render DATE in the local zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.svc.ToLocal(request.DateRequest{Date: args[0], Format: a.format})
			return printResult(cmd, result, err)
		},
	}
}

func (a *app) zoneCmd() *cobra.Command {
	var tz string

	cmd := &cobra.Command{
		Use:   "zone DATE",
		Short: "Render DATE in the zone given by --tz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.svc.InZone(request.ZoneRequest{Date: args[0], TimeZone: tz, Format: a.format})
			return printResult(cmd, result, err)
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "", "IANA zone, e.g. America/New_York")
	_ = cmd.MarkFlagRequired("tz")
	return cmd
}

func (a *app) filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter START END",
		Short: "Print the ISO-8601 range covering two YYYY-MM-DD days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := a.svc.FilterDates(request.FilterDatesRequest{StartDate: args[0], EndDate: args[1]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dates)
		},
	}
}

func printResult(cmd *cobra.Command, result string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
