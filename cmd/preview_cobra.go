package cmd

import "github.com/spf13/cobra"

var previewCmd = &cobra.Command{
	Use:     "preview <file>",
	Short:   "Render a résumé to a PNG raster preview",
	GroupID: "rendering",
	Args:    cobra.MaximumNArgs(1),
	Example: `  resumate preview resume.json -o resume.png
  resumate preview resume.json --template onyx`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("format", "", "input format: json-resume, rrv3, linkedin, rustume (auto-detected if omitted)")
	previewCmd.Flags().String("template", "", "template slug override")
	previewCmd.Flags().String("font-dir", "", "directory of .ttf/.otf fonts to bundle")
	previewCmd.Flags().Int("page", 0, "page index to render")
	previewCmd.Flags().StringP("output", "o", "resume.png", "output PNG path")
	previewCmd.Flags().Bool("watch", false, "re-render on every change to the input file")
}

func runPreview(cmd *cobra.Command, args []string) error {
	input := inputArg(args)
	format, _ := cmd.Flags().GetString("format")
	template, _ := cmd.Flags().GetString("template")
	fontDir, _ := cmd.Flags().GetString("font-dir")
	page, _ := cmd.Flags().GetInt("page")
	output, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")

	return NewPreviewCommand(input).
		WithFormat(format).
		WithTemplate(template).
		WithFontDir(fontDir).
		WithPage(page).
		WithOutput(output).
		WithWatch(watch).
		Execute(cmd.Context())
}
