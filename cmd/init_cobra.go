package cmd

import "github.com/spf13/cobra"

var initCmd = &cobra.Command{
	Use:     "init [file]",
	Short:   "Write a starter canonical document",
	GroupID: "composing",
	Args:    cobra.MaximumNArgs(1),
	Example: `  resumate init
  resumate init my-resume.json --sample`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("sample", false, "pre-fill with sample data")
}

func runInit(cmd *cobra.Command, args []string) error {
	output := "resume.json"
	if len(args) > 0 {
		output = args[0]
	}
	sample, _ := cmd.Flags().GetBool("sample")
	return NewInitCommand(output).WithSample(sample).Execute(cmd.Context())
}
