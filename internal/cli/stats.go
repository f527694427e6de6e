package cli

import (
	"fmt"
	"sort"
	"strings"

	"habitflow/internal/stats"
	"habitflow/internal/utils"
)

type StatsCmd struct {
	Trend      StatsTrendCmd      `cmd:"" help:"Show the metric time series."`
	Top        StatsTopCmd        `cmd:"" help:"Rank habits by total completions."`
	Tags       StatsTagsCmd       `cmd:"" help:"Show nutrition tag frequencies."`
	Window     StatsWindowCmd     `cmd:"" help:"Show the trailing completion window."`
	Categories StatsCategoriesCmd `cmd:"" help:"Show per-category weekly completion."`
}

type StatsTrendCmd struct {
	Days int `help:"Limit to the most recent N rows (0 = all)." default:"30"`
}

func (c *StatsTrendCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	series := stats.TimeSeries(profile.History)
	if len(series) == 0 {
		fmt.Println("No history yet.")
		return nil
	}
	if c.Days > 0 && len(series) > c.Days {
		series = series[len(series)-c.Days:]
	}

	fmt.Printf("%-12s %8s %7s %7s %5s\n", "Date", "Weight", "Sleep", "Habits", "RPE")
	for _, p := range series {
		weight := "     —"
		if p.Weight != nil {
			weight = fmt.Sprintf("%6.1f", *p.Weight)
		}
		fmt.Printf("%-12s %8s %6.1fh %7d %5d\n", p.Date, weight, p.SleepHours, p.HabitsCompleted, p.TrainingIntensity)
	}
	return nil
}

type StatsTopCmd struct{}

func (c *StatsTopCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	ranked := stats.TopHabits(profile.History)
	if len(ranked) == 0 {
		fmt.Println("No completions recorded yet.")
		return nil
	}

	for i, h := range ranked {
		fmt.Printf("%2d. %-24s %d\n", i+1, h.Name, h.Count)
	}
	return nil
}

type StatsTagsCmd struct{}

func (c *StatsTagsCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	freq := stats.TagFrequencies(profile.History)
	if len(freq) == 0 {
		fmt.Println("No tagged meals yet.")
		return nil
	}

	tags := make([]string, 0, len(freq))
	for tag := range freq {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if freq[tags[i]] != freq[tags[j]] {
			return freq[tags[i]] > freq[tags[j]]
		}
		return tags[i] < tags[j]
	})

	for _, tag := range tags {
		fmt.Printf("%-20s %d\n", tag, freq[tag])
	}
	return nil
}

type StatsWindowCmd struct {
	Days int `help:"Window length in days." default:"7"`
}

func (c *StatsWindowCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	window := stats.TrailingWindow(profile.History, utils.Today(), c.Days)
	for _, day := range window {
		fmt.Printf("%s %s %d\n", day.Date, strings.Repeat("█", day.Completed), day.Completed)
	}
	return nil
}

type StatsCategoriesCmd struct {
	Days int `help:"Window length in days." default:"7"`
}

func (c *StatsCategoriesCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	pct := stats.CategoryCompletion(profile.Habits, profile.History, utils.Today(), c.Days)
	if len(pct) == 0 {
		fmt.Println("No active habits.")
		return nil
	}

	for _, category := range stats.CategoryOrder {
		if p, ok := pct[category]; ok {
			fmt.Printf("%-10s %5.1f%%\n", category, p)
		}
	}
	return nil
}
