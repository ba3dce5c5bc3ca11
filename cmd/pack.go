package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shireesh.com/matforge/internal/compressor"
)

var packOut string

var packCmd = &cobra.Command{
	Use:   "pack <template-dir>",
	Short: "Bundle a template directory into a zip for embedding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := compressor.Pack(args[0], packOut); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("Bundled " + args[0] + " into " + packOut))
		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOut, "out", "O", "artifacts/templates.zip", "destination bundle path")
	rootCmd.AddCommand(packCmd)
}
