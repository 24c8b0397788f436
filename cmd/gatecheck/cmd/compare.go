package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kemballops/gatecheck"
	"github.com/kemballops/gatecheck/internal/cmd/alerts"
	"github.com/kemballops/gatecheck/internal/cmd/output"
	"github.com/kemballops/gatecheck/internal/export"
	"github.com/kemballops/gatecheck/internal/ingest"
	"github.com/kemballops/gatecheck/pkg/constants"
	"github.com/kemballops/gatecheck/pkg/logging"
	"github.com/kemballops/gatecheck/pkg/resolve"
)

var (
	compareUnitColumnTOPS  string
	compareUnitColumnCyman string
	compareStatuses        []string
	compareLocation        string
	compareActivity        string
	compareHaulier         string
	compareProfile         string
	compareExceptions      bool
	compareSingletons      bool
	compareExport          string
	compareNoExport        bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <tops-file> <cyman-file>",
	Short: "Compare container numbers between TOPS and Cyman exports",
	Long: `Compare reads a TOPS export and a Cyman export, filters each down to
the movements the two systems should agree on, and reports every
container number present in one system but missing from the other.

The command will:
1. Load both spreadsheet exports (CSV or XLSX)
2. Resolve the identifier and filter columns by header matching
3. Filter TOPS rows by status and unload location
4. Filter Cyman rows by activity (and haulier, when requested)
5. Reconcile the two identifier sets
6. Print the discrepancy report and write the styled workbook

When no mismatches are found no workbook is written.`,
	Example: `  gatecheck compare tops.xlsx cyman.xlsx
  gatecheck compare tops.csv cyman.csv -o json
  gatecheck compare tops.xlsx cyman.xlsx --location "FELIXSTOWE SOUTH" --exceptions
  gatecheck compare tops.xlsx cyman.xlsx --haulier KEMBALL --singletons
  gatecheck compare tops.xlsx cyman.xlsx --export results.xlsx
  gatecheck compare tops.xlsx cyman.xlsx --no-export`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareUnitColumnTOPS, "unit-column-tops", "", "Explicit identifier column in the TOPS export (skips header matching)")
	compareCmd.Flags().StringVar(&compareUnitColumnCyman, "unit-column-cyman", "", "Explicit identifier column in the Cyman export (skips header matching)")
	compareCmd.Flags().StringSliceVar(&compareStatuses, "statuses", constants.DefaultAcceptedStatuses, "TOPS statuses to keep")
	compareCmd.Flags().StringVar(&compareLocation, "location", constants.DefaultTargetLocation, "TOPS unload location to keep (center/centre spelling is tolerated)")
	compareCmd.Flags().StringVar(&compareActivity, "activity", constants.DefaultRequiredActivity, "Cyman activity to keep")
	compareCmd.Flags().StringVar(&compareHaulier, "haulier", "", "Cyman haulier to keep (haulier filtering is off when empty)")
	compareCmd.Flags().StringVar(&compareProfile, "profile", "", "Column-matching profile file (YAML)")
	compareCmd.Flags().BoolVar(&compareExceptions, "exceptions", false, "Apply exception rules to containers present in both systems")
	compareCmd.Flags().BoolVar(&compareSingletons, "singletons", false, "Flag containers appearing exactly once across both systems")
	compareCmd.Flags().StringVar(&compareExport, "export", "", "Workbook output path (default: container_mismatches_<timestamp>.xlsx)")
	compareCmd.Flags().BoolVar(&compareNoExport, "no-export", false, "Skip writing the workbook")

	for _, flag := range []string{"statuses", "location", "activity", "haulier", "profile"} {
		if err := viper.BindPFlag("compare."+flag, compareCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}

	tops, err := ingest.Read(args[0], constants.SystemTOPS)
	if err != nil {
		return fmt.Errorf("loading TOPS export: %w", err)
	}
	cyman, err := ingest.Read(args[1], constants.SystemCyman)
	if err != nil {
		return fmt.Errorf("loading Cyman export: %w", err)
	}

	opts, err := buildCompareOptions()
	if err != nil {
		return err
	}

	result, err := gatecheck.Compare(tops, cyman, opts...)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if len(result.Warnings) > 0 && !globalFlags.Quiet {
		alert := alerts.NewWarning("comparison degraded").WithDetails(result.Warnings...)
		_ = alert.Write(os.Stderr)
	}

	if result.Empty() {
		fmt.Println("No mismatches found. All container numbers match between TOPS and Cyman.")
		return nil
	}

	if err := output.FormatReport(os.Stdout, result, format); err != nil {
		return err
	}

	if !compareNoExport {
		path, err := export.Write(result, compareExport)
		if err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Results saved to %s\n", path)
	}

	return nil
}

// buildCompareOptions translates flags (with viper config fallbacks) into
// comparison options.
func buildCompareOptions() ([]gatecheck.Option, error) {
	opts := []gatecheck.Option{
		gatecheck.WithLogger(logging.Default()),
		gatecheck.WithAcceptedStatuses(viper.GetStringSlice("compare.statuses")...),
		gatecheck.WithTargetLocation(viper.GetString("compare.location")),
		gatecheck.WithRequiredActivity(viper.GetString("compare.activity")),
	}

	if haulier := viper.GetString("compare.haulier"); haulier != "" {
		opts = append(opts, gatecheck.WithRequiredHaulier(haulier))
	}
	if compareUnitColumnTOPS != "" {
		opts = append(opts, gatecheck.WithUnitColumnTOPS(compareUnitColumnTOPS))
	}
	if compareUnitColumnCyman != "" {
		opts = append(opts, gatecheck.WithUnitColumnCyman(compareUnitColumnCyman))
	}
	if compareExceptions {
		opts = append(opts, gatecheck.WithExceptionRules(true))
	}
	if compareSingletons {
		opts = append(opts, gatecheck.WithSingletonCheck(true))
	}
	if profilePath := viper.GetString("compare.profile"); profilePath != "" {
		profile, err := resolve.LoadProfile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading column profile: %w", err)
		}
		opts = append(opts, gatecheck.WithProfile(profile))
	}

	return opts, nil
}
