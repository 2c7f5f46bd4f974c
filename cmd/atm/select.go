package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/ui"
)

func newSelectCmd() *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   messages.SelectUse,
		Short: messages.SelectShort,
		Args:  cobra.NoArgs,
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
				options, selected := p.selectOptions()
				if err := newUI().MultiSelect(a.loc.Sprintf(messages.SelectTitle), options, &selected); err != nil {
					return err
				}
				if !p.applySelection(selected) && len(p.closed) == 0 {
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

// selectOptions lists the open topics, pre-selecting the enabled ones.
func (p *plan) selectOptions() ([]ui.Option, []string) {
	options := make([]ui.Option, 0, len(p.listing))
	selected := make([]string, 0, len(p.listing))
	for _, m := range p.listing {
		if m.Closed {
			continue
		}
		label := m.Name
		if m.Description != "" {
			label = fmt.Sprintf(messages.SelectOptionFmt, m.Name, m.Description)
		}
		options = append(options, ui.Option{Label: label, Value: m.Name, Selected: m.Enabled})
		if m.Enabled {
			selected = append(selected, m.Name)
		}
	}
	return options, selected
}

// applySelection enables exactly the selected open topics and reports whether anything changed.
func (p *plan) applySelection(selected []string) bool {
	want := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		want[name] = struct{}{}
	}
	changed := false
	for i := range p.listing {
		entry := &p.listing[i]
		if entry.Closed {
			continue
		}
		_, enable := want[entry.Name]
		if entry.Enabled != enable {
			entry.Enabled = enable
			changed = true
		}
	}
	return changed
}
