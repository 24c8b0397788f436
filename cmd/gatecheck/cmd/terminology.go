package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kemballops/gatecheck/internal/cmd/output"
	"github.com/kemballops/gatecheck/pkg/report"
)

// terminologyCmd represents the terminology command.
var terminologyCmd = &cobra.Command{
	Use:   "terminology",
	Short: "Show the TOPS/Cyman terminology mapping",
	Long: `Show which terms the two tracking systems use for the same concept,
for example TOPS "Container Number" versus Cyman "Unit No".`,
	RunE: func(_ *cobra.Command, _ []string) error {
		format, err := output.ParseFormat(globalFlags.Output)
		if err != nil {
			return err
		}
		return output.FormatTerminology(os.Stdout, report.TerminologyMapping, format)
	},
}

func init() {
	rootCmd.AddCommand(terminologyCmd)
}
