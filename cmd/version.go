package cmd

import (
	"fmt"

	"github.com/parkstruct/gofooting/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofooting",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofooting v%s\n", version.Version)
		fmt.Println("Foundation Designer for Parking Structures")
		fmt.Println("Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
