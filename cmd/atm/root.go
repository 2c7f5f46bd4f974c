package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/config"
	"github.com/conn-castle/topic-manager/internal/messages"
)

const flagConfig = "config"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String(flagConfig, config.DefaultConfigPath, messages.RootFlagConfig)
	registerLoggingFlags(cmd)

	cmd.AddCommand(
		newListCmd(),
		newEnableCmd(),
		newDisableCmd(),
		newSelectCmd(),
		newRefreshCmd(),
	)
	return cmd
}
