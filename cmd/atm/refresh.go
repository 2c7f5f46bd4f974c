package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/messages"
)

func newRefreshCmd() *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   messages.RefreshUse,
		Short: messages.RefreshShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.locked(opts.dryRun, func(w committer) error {
				p, err := a.plan(cmd.Context())
				if err != nil {
					return err
				}
				if !p.hasHistory {
					a.loc.Fprintln(out, messages.NoHistoryWarning)
					return nil
				}
				if len(p.closed) == 0 {
					a.loc.Fprintln(out, messages.RefreshNothingClosed)
					return nil
				}
				return a.apply(cmd.Context(), out, w, p, opts)
			})
		},
	}
	opts.register(cmd)
	return cmd
}
