package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/i18n"
	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/topic"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// listEntry is the JSON form of one listing row.
type listEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Date        int64    `json:"date"`
	Arch        []string `json:"arch"`
	Packages    []string `json:"packages"`
	Enabled     bool     `json:"enabled"`
	Closed      bool     `json:"closed"`
}

func newListCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf(messages.ListInvalidOutputFmt, output)
			}
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			listing, err := a.listing(cmd.Context())
			if err != nil {
				return err
			}
			if output == outputJSON {
				return writeListJSON(cmd.OutOrStdout(), listing)
			}
			writeListTable(cmd.OutOrStdout(), a.loc, listing)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, messages.ListFlagOutput)
	return cmd
}

func writeListJSON(w io.Writer, listing []topic.Manifest) error {
	entries := make([]listEntry, 0, len(listing))
	for _, m := range listing {
		entries = append(entries, listEntry{
			Name:        m.Name,
			Description: m.Description,
			Date:        m.Date,
			Arch:        nonNil(m.Arch),
			Packages:    nonNil(m.Packages),
			Enabled:     m.Enabled,
			Closed:      m.Closed,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func writeListTable(w io.Writer, loc *i18n.Localizer, listing []topic.Manifest) {
	if len(listing) == 0 {
		loc.Fprintln(w, messages.ListEmpty)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		loc.Sprintf(messages.ListHeaderState),
		loc.Sprintf(messages.ListHeaderName),
		loc.Sprintf(messages.ListHeaderDate),
		loc.Sprintf(messages.ListHeaderPackages),
		loc.Sprintf(messages.ListHeaderDescription),
	})
	for _, m := range listing {
		t.AppendRow(table.Row{
			stateLabel(loc, m),
			m.Name,
			formatDate(m.Date),
			strconv.Itoa(len(m.Packages)),
			m.Description,
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

func stateLabel(loc *i18n.Localizer, m topic.Manifest) string {
	switch {
	case m.Closed:
		return color.RedString(loc.Sprintf(messages.ListStateClosed))
	case m.Enabled:
		return color.GreenString(loc.Sprintf(messages.ListStateEnabled))
	default:
		return loc.Sprintf(messages.ListStateAvailable)
	}
}

func formatDate(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	return time.Unix(seconds, 0).UTC().Format(time.DateOnly)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
