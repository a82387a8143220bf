package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattsmi/cjdn/internal/calendar"
	"github.com/mattsmi/cjdn/internal/convert"
	"github.com/mattsmi/cjdn/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cjdn",
		Short: "Convert dates between the Gregorian, Revised Julian and Julian calendars",
		Long: `cjdn converts calendar dates through the Chronological Julian Day Number,
a whole-day count from 1 January 4713 BC (proleptic Julian, day boundary
at local midnight).

Supported calendars: gregorian, milankovic (alias revised-julian), julian.
Years use astronomical numbering: year 0 is 1 BC, year -1 is 2 BC.

Run without a subcommand for the interactive converter.`,
		RunE: runTUI,
	}

	rootCmd.AddCommand(newToCmd())
	rootCmd.AddCommand(newFromCmd())
	rootCmd.AddCommand(newWeekdayCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newEasterCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// parseCJDN validates a CJDN command-line argument.
func parseCJDN(arg string) (int, error) {
	j, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid CJDN %q: expected an integer", arg)
	}
	return j, nil
}

func newToCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "to CALENDAR YEAR MONTH DAY",
		Short: "Convert a calendar date to its CJDN",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := calendar.ParseSystem(args[0])
			if err != nil {
				return err
			}
			d, err := convert.ParseDate(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if strict {
				if err := sys.Validate(d); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), sys.ToCJDN(d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject dates that are not valid on the calendar (off by default: out-of-range input yields a deterministic arithmetic result)")

	return cmd
}

func newFromCmd() *cobra.Command {
	var sel convert.Selection

	cmd := &cobra.Command{
		Use:   "from CALENDAR CJDN",
		Short: "Convert a CJDN to an ISO 8601 calendar date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := calendar.ParseSystem(args[0])
			if err != nil {
				return err
			}
			j, err := parseCJDN(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert.FromCJDN(sys, j, sel))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sel.Year, "year", false, "Print only the year")
	cmd.Flags().BoolVar(&sel.Month, "month", false, "Print only the month")
	cmd.Flags().BoolVar(&sel.Day, "day", false, "Print only the day (year takes precedence over month over day if several are set)")

	return cmd
}

func newWeekdayCmd() *cobra.Command {
	var calName string

	cmd := &cobra.Command{
		Use:   "weekday CJDN",
		Short: "Print the ISO 8601 day of the week (1=Monday .. 7=Sunday) for a CJDN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := calendar.ParseSystem(calName)
			if err != nil {
				return err
			}
			j, err := parseCJDN(args[0])
			if err != nil {
				return err
			}
			wd, err := calendar.DayOfWeek(j, sys)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", wd, calendar.WeekdayName(wd))
			return nil
		},
	}

	cmd.Flags().StringVar(&calName, "calendar", "gregorian", "Calendar to interpret the day under (the weekday itself is calendar-independent)")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "convert FROM TO YEAR MONTH DAY",
		Short: "Re-express a date from one calendar on another",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := calendar.ParseSystem(args[0])
			if err != nil {
				return err
			}
			to, err := calendar.ParseSystem(args[1])
			if err != nil {
				return err
			}
			d, err := convert.ParseDate(args[2], args[3], args[4])
			if err != nil {
				return err
			}
			if strict {
				if err := from.Validate(d); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert.Between(from, to, d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject dates that are not valid on the source calendar")

	return cmd
}

func newEasterCmd() *cobra.Command {
	var calName string

	cmd := &cobra.Command{
		Use:   "easter YEAR",
		Short: "Print the date of Easter Sunday for a year",
		Long: `Print the date of Easter Sunday for a year.

--calendar selects the reckoning: gregorian (Western Easter, Gregorian
date), julian (Julian computus, date on the Julian calendar) or orthodox
(Julian computus expressed on the Gregorian calendar).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: expected an integer", args[0])
			}
			var d calendar.Date
			switch calName {
			case "gregorian":
				d = calendar.GregorianEaster(year)
			case "julian":
				d = calendar.JulianEaster(year)
			case "orthodox":
				d = calendar.OrthodoxEaster(year)
			default:
				return fmt.Errorf("unknown Easter reckoning %q (want gregorian, julian or orthodox)", calName)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().StringVar(&calName, "calendar", "gregorian", "Easter reckoning: gregorian, julian or orthodox")

	return cmd
}
