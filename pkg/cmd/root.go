package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "taflow",
	Short: "taflow computes technical analysis indicators over OHLCV data",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug mode")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
