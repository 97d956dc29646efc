package cmd

import "github.com/spf13/cobra"

var parseCmd = &cobra.Command{
	Use:     "parse <file>",
	Short:   "Parse a résumé into the canonical document format",
	Long:    "Read a résumé in JSON Resume, rrv3, linkedin, or rustume format and print its canonical document representation as JSON.",
	GroupID: "composing",
	Args:    cobra.MaximumNArgs(1),
	Example: `  resumate parse resume.json
  resumate parse export.zip --format linkedin
  cat resume.json | resumate parse -`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("format", "", "input format: json-resume, rrv3, linkedin, rustume (auto-detected if omitted)")
	parseCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

func runParse(cmd *cobra.Command, args []string) error {
	input := inputArg(args)
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	return NewParseCommand(input).WithFormat(format).WithOutput(output).Execute(cmd.Context())
}

// inputArg returns the first positional argument, or "-" for stdin when
// none was given.
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
