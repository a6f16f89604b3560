package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes and exit",
	Long: `Creates the unique, search and listing indexes for every collection.
Indexes that already exist with the same definition are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		logger, err := logging.FromConfig(cfg)
		if err != nil {
			return err
		}
		mc, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			return err
		}
		defer mc.Close(context.Background())

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		if err := dbmongo.EnsureIndexes(ctx, mc.Database); err != nil {
			return err
		}
		for coll, models := range dbmongo.IndexModels() {
			logger.Infof("%s: %d indexes ensured", coll, len(models))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
