package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/settings"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func newSchemaCmd() *cobra.Command {
	var category string
	var all, newLeague, realPlayers bool
	cmd := &cobra.Command{
		Use:   messages.SchemaUse,
		Short: messages.SchemaShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !knownCategory(category) {
				return fmt.Errorf(messages.SchemaUnknownCategoryFmt, category)
			}
			resolved, err := settings.Resolve(settings.Catalog(), settings.Visibility{NewLeague: newLeague, RealPlayers: realPlayers})
			if err != nil {
				return err
			}
			byCategory := make(map[settings.Category][]settings.Descriptor)
			for _, d := range resolved {
				if d.Hidden && !all {
					continue
				}
				byCategory[d.Category] = append(byCategory[d.Category], d)
			}

			out := cmd.OutOrStdout()
			for _, c := range settings.Categories {
				if category != "" && string(c) != category || len(byCategory[c]) == 0 {
					continue
				}
				_, _ = fmt.Fprintln(out, headingStyle.Render(string(c)))
				for _, d := range byCategory[c] {
					tag := ""
					if settings.SettingNeedsGodMode(d.GodModeRequired, newLeague) {
						tag = messages.SchemaGodModeTag
					}
					_, _ = fmt.Fprintf(out, messages.SchemaLineFmt, d.Key, d.Kind, d.Name, tag)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", messages.SchemaFlagCategory)
	cmd.Flags().BoolVar(&all, "all", false, messages.SchemaFlagAll)
	cmd.Flags().BoolVar(&newLeague, "new-league", false, messages.EditFlagNewLeague)
	cmd.Flags().BoolVar(&realPlayers, "real-players", false, messages.SchemaFlagRealPlayers)
	return cmd
}

func knownCategory(name string) bool {
	for _, c := range settings.Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}
