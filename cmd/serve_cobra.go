package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the HTTP API",
	Long:    "Start the HTTP service exposing parse, validate, render, and thumbnail endpoints.",
	GroupID: "serving",
	Example: `  resumate serve
  resumate serve --port 8080
  resumate serve --api-key secret`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 3000, "port to listen on (env: PORT, then RESUMATE_SERVER_PORT)")
	serveCmd.Flags().String("font-dir", "", "directory of .ttf/.otf fonts to bundle")
	serveCmd.Flags().String("api-key", "", "require this bearer token on every request but /health")

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	if !cmd.Flags().Changed("port") {
		port = viper.GetInt("server.port")
		if envPort, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			port = envPort
		}
	}
	fontDir, _ := cmd.Flags().GetString("font-dir")
	apiKey, _ := cmd.Flags().GetString("api-key")

	return NewServeCommand(port).WithFontDir(fontDir).WithAPIKey(apiKey).Execute(cmd.Context())
}
