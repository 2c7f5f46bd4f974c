package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/messages"
)

func newEnableCmd() *cobra.Command {
	return newToggleCmd(messages.EnableUse, messages.EnableShort, true)
}

func newDisableCmd() *cobra.Command {
	return newToggleCmd(messages.DisableUse, messages.DisableShort, false)
}

func newToggleCmd(use string, short string, enable bool) *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(messages.TopicsRequired)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return a.locked(opts.dryRun, func(w committer) error {
				p, err := a.plan(cmd.Context())
				if err != nil {
					return err
				}
				changed, err := p.toggle(args, enable)
				if err != nil {
					return err
				}
				if !changed && len(p.closed) == 0 {
					a.loc.Fprintln(cmd.OutOrStdout(), messages.CommitNoChanges)
					return nil
				}
				return a.apply(cmd.Context(), cmd.OutOrStdout(), w, p, opts)
			})
		},
	}
	opts.register(cmd)
	return cmd
}

// toggle sets the enabled flag of the named topics and reports whether anything changed.
// Closed topics cannot be enabled; disabling one is a no-op since it is dropped on commit.
func (p *plan) toggle(names []string, enable bool) (bool, error) {
	changed := false
	for _, name := range names {
		entry := p.find(name)
		if entry == nil {
			return false, fmt.Errorf(messages.TopicNotFoundFmt, name)
		}
		if entry.Closed {
			if enable {
				return false, fmt.Errorf(messages.TopicClosedFmt, name)
			}
			continue
		}
		if entry.Enabled != enable {
			entry.Enabled = enable
			changed = true
		}
	}
	return changed, nil
}
