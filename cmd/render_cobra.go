package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:     "render <file>",
	Short:   "Render a résumé to PDF",
	GroupID: "rendering",
	Args:    cobra.MaximumNArgs(1),
	Example: `  resumate render resume.json -o resume.pdf
  resumate render resume.json --template onyx --watch`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("format", "", "input format: json-resume, rrv3, linkedin, rustume (auto-detected if omitted)")
	renderCmd.Flags().String("template", "", "template slug override")
	renderCmd.Flags().String("font-dir", "", "directory of .ttf/.otf fonts to bundle")
	renderCmd.Flags().StringP("output", "o", "resume.pdf", "output PDF path")
	renderCmd.Flags().Bool("watch", false, "re-render on every change to the input file")

	_ = viper.BindPFlag("fonts.extra_dir", renderCmd.Flags().Lookup("font-dir"))
}

func runRender(cmd *cobra.Command, args []string) error {
	input := inputArg(args)
	format, _ := cmd.Flags().GetString("format")
	template, _ := cmd.Flags().GetString("template")
	fontDir, _ := cmd.Flags().GetString("font-dir")
	output, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")

	return NewRenderCommand(input).
		WithFormat(format).
		WithTemplate(template).
		WithFontDir(fontDir).
		WithOutput(output).
		WithWatch(watch).
		Execute(cmd.Context())
}
