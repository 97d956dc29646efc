package cmd

import "github.com/spf13/cobra"

var validateCmd = &cobra.Command{
	Use:     "validate <file>",
	Short:   "Validate a résumé against the canonical document constraints",
	GroupID: "composing",
	Args:    cobra.MaximumNArgs(1),
	Example: `  resumate validate resume.json
  resumate validate export.zip --format linkedin`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("format", "", "input format: json-resume, rrv3, linkedin, rustume (auto-detected if omitted)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := inputArg(args)
	format, _ := cmd.Flags().GetString("format")
	return NewValidateCommand(input).WithFormat(format).Execute(cmd.Context())
}
