package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utube",
	Short: "UTube video sharing API",
	Long: `UTube serves the video sharing API: accounts, videos, comments,
likes, subscriptions, playlists and tweets. Configuration comes from the
environment and an optional .env file.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
