package cmd

import "github.com/spf13/cobra"

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Short:   "List the template catalogue and its default colours",
	GroupID: "rendering",
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewTemplatesCommand().Execute(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
