package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "marketplace",
		Short:         "Fashion marketplace recommendation backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newRecommendCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
