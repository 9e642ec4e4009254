package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/kungfusheep/timepicker"
)

var localesCmd = &cobra.Command{
	Use:   "locales [tag...]",
	Short: "List locale time patterns and the reels they produce",
	Long: `List the built-in locales, or the given locale tags, with their time
pattern, the inferred format and the resulting reel order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := timepicker.CLDRProvider{}.Locales()
		if len(args) > 0 {
			tags = tags[:0]
			for _, a := range args {
				tag, err := language.Parse(a)
				if err != nil {
					return fmt.Errorf("locale %q: %w", a, err)
				}
				tags = append(tags, tag)
			}
		}
		renderLocales(cmd.OutOrStdout(), timepicker.CLDRProvider{}, tags)
		return nil
	},
}

func renderLocales(w io.Writer, provider timepicker.Provider, tags []language.Tag) {
	resolver := timepicker.NewResolver(provider)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Locale", "Pattern", "Format", "Reels", "Order", "AM", "PM"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, tag := range tags {
		pattern, ok := resolver.Pattern(tag)
		if !ok {
			pattern = "-"
		}
		format := resolver.Resolve(tag)
		layout := timepicker.LayoutFor(format)
		var order []string
		for _, f := range layout.Fields() {
			order = append(order, f.String())
		}
		am, pm := provider.DayPeriods(tag)
		table.Append([]string{
			tag.String(),
			pattern,
			format.String(),
			strconv.Itoa(layout.Reels),
			strings.Join(order, " "),
			am,
			pm,
		})
	}
	table.Render()
}
