package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	"fieldboard.com/fieldboard/source"
)

func main() {
	path := flag.String("path", "visits.xlsx", "Workbook to read")
	days := flag.String("days", "", "Comma-separated day filter (e.g. Monday,Tuesday)")
	personnel := flag.String("personnel", "", "Comma-separated personnel filter")
	top := flag.Int("top", 15, "How many locations to list")
	flag.Parse()

	if err := Run(*path, *days, *personnel, *top); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(path, days, personnel string, top int) error {
	// 1. Fetch and normalize
	fmt.Printf("Reading workbook: %s\n", path)
	reader := source.NewWorkbookReader(path)
	tables, err := reader.Fetch(context.Background())
	if err != nil {
		return err
	}

	ds := engine.NewDataset(engine.Normalize(tables))

	// 2. Apply filters
	var opts engine.FilterOptions
	for _, raw := range splitList(days) {
		day, ok := model.ParseDay(raw)
		if !ok {
			return fmt.Errorf("unknown day %q", raw)
		}
		opts.Days = append(opts.Days, day)
	}
	opts.Personnel = splitList(personnel)
	ds = ds.Select(opts)

	if ds.Empty() {
		fmt.Println("No data found. Reps must complete their day in the field logger app first.")
		return nil
	}

	// 3. Team KPIs
	fmt.Printf("\nSnapshot %s\n", ds.SnapshotID)
	fmt.Printf("Personnel:     %d\n", ds.UniqueCount(engine.ByPersonnel))
	fmt.Printf("Total visits:  %d\n", ds.Len())
	fmt.Printf("Locations:     %d\n", ds.UniqueCount(engine.ByLocation))
	if mean, ok := ds.MeanDuration(); ok {
		fmt.Printf("Avg duration:  %.0fm\n", mean)
	}

	// 4. Visits by personnel
	fmt.Println("\nVisits by personnel:")
	counts := ds.CountBy(engine.ByPersonnel)
	sums := ds.SumDurationBy(engine.ByPersonnel)
	for _, name := range rankDesc(ds.GroupKeys(engine.ByPersonnel), counts) {
		fmt.Printf("  %-24s %3d visits  %5.1fh in field\n",
			name, counts[name], float64(sums[name])/60)
	}

	// 5. Daily trend
	fmt.Println("\nDaily trend:")
	dayCounts := ds.CountBy(engine.ByDay)
	for _, day := range model.Days {
		if dayCounts[string(day)] == 0 {
			continue
		}
		fmt.Printf("  %-10s %3d visits\n", day, dayCounts[string(day)])
	}

	// 6. Top locations
	fmt.Println("\nTop locations:")
	locCounts := ds.CountBy(engine.ByLocation)
	ranked := rankDesc(ds.GroupKeys(engine.ByLocation), locCounts)
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	for _, location := range ranked {
		fmt.Printf("  %-32s %3d visits\n", location, locCounts[location])
	}

	return nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func rankDesc(keys []string, counts map[string]int) []string {
	ranked := make([]string, len(keys))
	copy(ranked, keys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}
