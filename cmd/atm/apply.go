package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/revert"
	"github.com/conn-castle/topic-manager/internal/topic"
)

type applyOptions struct {
	dryRun   bool
	noRevert bool
	noUpdate bool
}

func (o *applyOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, messages.FlagDryRun)
	cmd.Flags().BoolVar(&o.noRevert, "no-revert", false, messages.FlagNoRevert)
	cmd.Flags().BoolVar(&o.noUpdate, "no-update", false, messages.FlagNoUpdate)
}

// apply commits the enabled, open entries of p.listing and reverts the installed
// packages of closed topics to stable. w is nil for a dry run.
//
// The source list is committed first so that apt-get update drops the closed topics
// before the stable versions are installed. Until the install succeeds the closed topics
// stay in the snapshot, so a failed apt-get run leaves them detectable by the next run.
func (a *app) apply(ctx context.Context, out io.Writer, w committer, p *plan, opts applyOptions) error {
	warn := color.New(color.FgYellow)
	for _, closed := range p.closed {
		_, _ = warn.Fprint(out, a.loc.Sprintf(messages.ClosedTopicWarnFmt, closed.Name))
	}

	var directives []revert.Directive
	if !opts.noRevert && len(p.closed) > 0 {
		var err error
		directives, err = revert.FromOracle(p.closed, a.oracle)
		if err != nil {
			return err
		}
		a.log.Debug("computed revert set", "closed", len(p.closed), "packages", len(directives))
	}

	enabled := topic.Enabled(p.listing)
	if opts.dryRun {
		a.printRevertPlan(out, p, directives, opts)
		return a.preview(out, enabled)
	}

	var pending []topic.Previous
	if len(directives) > 0 {
		pending = make([]topic.Previous, 0, len(p.closed))
		for _, closed := range p.closed {
			pending = append(pending, closed.ToPrevious())
		}
	}
	if err := w.CommitRetaining(enabled, pending); err != nil {
		return err
	}
	a.log.Info("committed topics", "source_list", a.materializer.Path(), "state", a.store.Path(), "enabled", len(enabled), "pending_revert", len(pending))
	_, _ = color.New(color.FgGreen).Fprint(out, a.loc.Sprintf(messages.CommitDoneFmt, len(enabled)))

	if !opts.noUpdate {
		if err := a.apt.Update(ctx); err != nil {
			return err
		}
	}
	a.printRevertPlan(out, p, directives, opts)
	if len(directives) == 0 {
		return nil
	}
	if err := a.apt.Install(ctx, revert.Targets(directives)); err != nil {
		return err
	}
	return w.Commit(enabled)
}

func (a *app) printRevertPlan(out io.Writer, p *plan, directives []revert.Directive, opts applyOptions) {
	if opts.noRevert || len(p.closed) == 0 {
		return
	}
	if len(directives) == 0 {
		a.loc.Fprintln(out, messages.RevertNothing)
		return
	}
	a.loc.Fprintln(out, messages.RevertPlanHeader)
	for _, d := range directives {
		_, _ = fmt.Fprintf(out, "  %s\n", d)
	}
}

func (a *app) preview(out io.Writer, enabled []*topic.Manifest) error {
	diff, err := a.materializer.Preview(enabled)
	if err != nil {
		return err
	}
	if diff == "" {
		a.loc.Fprintln(out, messages.DryRunNoDiff)
		return nil
	}
	a.loc.Fprintln(out, messages.DryRunHeader)
	_, _ = fmt.Fprint(out, diff)
	return nil
}
