package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notepreview",
	Short: "Notepreview turns config and knowledge files into display models.",
	Long:  "Notepreview turns config and knowledge files into display models. It scans TOML-like configuration into titled blocks, recognizes knowledge JSON documents, and computes folding ranges for a code view.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Notepreview",
	Long:  `All software has versions. This is Notepreview's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Notepreview v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}
