package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/models"
	"github.com/napolitain/solver-bar/internal/solver"
)

func printBanner() {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Beyond All Reason        │")
	titleColor.Println("│  Economy Calculator       │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func printHistory(state *economy.State) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Object", "Completed", "Time"}),
	)

	for i, c := range state.History {
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			c.Name,
			formatSeconds(c.CompletedAt),
			fmt.Sprintf("%.2f", c.CompletedAt),
		})
	}

	_ = table.Render()
}

func printStatus(state *economy.State) {
	infoColor := color.New(color.FgYellow)
	snap := state.Snapshot()

	infoColor.Printf("\nStatus at t=%.2f (%s)\n", snap.Time, formatSeconds(snap.Time))
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Resource", "Stock", "Cap", "Income"}),
	)
	_ = table.Append([]string{"Metal", formatAmount(snap.Metal), formatAmount(snap.MaxMetal), fmt.Sprintf("%+.2f/s", snap.MetalPerSecond)})
	_ = table.Append([]string{"Energy", formatAmount(snap.Energy), formatAmount(snap.MaxEnergy), fmt.Sprintf("%+.2f/s", snap.EnergyPerSecond)})
	_ = table.Append([]string{"Buildpower", formatAmount(snap.Buildpower), "", ""})
	_ = table.Render()

	fmt.Printf("   • Builders (%d): %s\n", snap.Builders, summarize(state.Builders))
	fmt.Printf("   • Buildings (%d): %s\n", snap.Buildings, summarize(state.Buildings))
	if snap.NumberConverters > 0 {
		fmt.Printf("   • Energy converters: %d\n", snap.NumberConverters)
	}
}

func printAdvice(advice solver.Advice) {
	successColor := color.New(color.FgGreen, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Target", "Status", "Req. BP", "Req. E/s", "BP ratio", "E ratio", "Usable BP"}),
	)
	for a := &advice; a != nil; a = a.Energy {
		_ = table.Append([]string{
			a.Target,
			a.Status.String(),
			formatAmount(a.RequiredBuildpower),
			formatAmount(a.RequiredEnergy),
			formatRatio(a.BuildpowerRatio),
			formatRatio(a.EnergyRatio),
			formatAmount(a.UsableBuildpower),
		})
	}
	_ = table.Render()

	c := warnColor
	if advice.Status == solver.StatusReady {
		c = successColor
	}
	if advice.Suggestion == "" {
		c.Printf("\nNo suggestion for %s\n", advice.Target)
		return
	}
	c.Printf("\n→ Build %s\n", advice.Suggestion)
}

func printComparison(a, b *economy.State) {
	sa, sb := a.Snapshot(), b.Snapshot()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"", "A", "B", "B - A"}),
	)
	rows := []struct {
		label string
		a, b  float64
	}{
		{"Time", sa.Time, sb.Time},
		{"Metal", sa.Metal, sb.Metal},
		{"Energy", sa.Energy, sb.Energy},
		{"Metal/s", sa.MetalPerSecond, sb.MetalPerSecond},
		{"Energy/s", sa.EnergyPerSecond, sb.EnergyPerSecond},
		{"Buildpower", sa.Buildpower, sb.Buildpower},
		{"Objects", float64(len(a.History)), float64(len(b.History))},
	}
	for _, r := range rows {
		_ = table.Append([]string{r.label, formatAmount(r.a), formatAmount(r.b), fmt.Sprintf("%+.2f", r.b-r.a)})
	}
	_ = table.Render()
}

func printCatalog(catalog *models.Catalog) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Name", "Kind", "Metal", "Energy", "BP cost", "Metal/s", "Energy/s", "BP", "Flags"}),
	)

	catalog.Each(func(p models.ObjectProfile) {
		var flags []string
		if p.IsBuilder() {
			flags = append(flags, "builder")
		}
		if p.Converter {
			flags = append(flags, "converter")
		}
		_ = table.Append([]string{
			p.Name,
			string(p.Kind),
			formatAmount(p.MetalCost),
			formatAmount(p.EnergyCost),
			formatAmount(p.BuildpowerCost),
			formatIncome(p.MetalIncome),
			formatIncome(p.EnergyIncome),
			formatIncome(p.BuildpowerIncome),
			strings.Join(flags, ","),
		})
	})

	_ = table.Render()
}

func formatSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func formatAmount(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatIncome(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%+g", v)
}

func formatRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// summarize collapses repeated names: [Mex Mex Wind] -> "2×Mex, Wind"
func summarize(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	counts := make(map[string]int)
	var order []string
	for _, n := range names {
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}

	parts := make([]string, 0, len(order))
	for _, n := range order {
		if counts[n] > 1 {
			parts = append(parts, fmt.Sprintf("%d×%s", counts[n], n))
		} else {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}
