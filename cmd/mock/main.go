package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/xuri/excelize/v2"

	"fieldboard.com/fieldboard/model"
)

var personnel = []string{"Alice Ward", "Bob Chen", "Cara Okafor", "Dan Silva"}

var locations = []string{
	"North Depot", "Harbour Site", "South Yard", "Airport Kiosk",
	"Riverside Mall", "Central Office", "East Market",
}

// Generates a sample visits workbook so the dashboard can be exercised
// without the field logger app.
func main() {
	path := flag.String("path", "visits.xlsx", "Where to write the workbook")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{
		model.ColPersonnelName, model.ColVisitNumber, model.ColLocation,
		model.ColCheckInTime, model.ColCheckOutTime,
		model.ColLoginTime, model.ColLogoutTime, model.ColMapsLink, model.ColSelfie,
	}

	total := 0
	for _, day := range model.Days {
		if _, err := f.NewSheet(string(day)); err != nil {
			log.Fatalf("failed to create sheet %s: %v", day, err)
		}
		if err := f.SetSheetRow(string(day), "A1", &header); err != nil {
			log.Fatalf("failed to write header: %v", err)
		}

		rowIdx := 2
		for _, name := range personnel {
			// Not everyone works every day.
			if rng.Intn(5) == 0 {
				continue
			}

			visits := 1 + rng.Intn(4)
			hour := 8 + rng.Intn(2)
			minute := rng.Intn(60)
			login := fmt.Sprintf("%02d:%02d", hour, minute)

			for v := 1; v <= visits; v++ {
				duration := 20 + rng.Intn(70)
				start := hour*60 + minute
				end := start + duration

				row := []interface{}{
					name,
					v,
					locations[rng.Intn(len(locations))],
					fmt.Sprintf("%02d:%02d", start/60, start%60),
					fmt.Sprintf("%02d:%02d", end/60, end%60),
					login,
					"",
					fmt.Sprintf("https://maps.example/?q=visit-%d", total),
					"yes",
				}
				cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
				if err := f.SetSheetRow(string(day), cell, &row); err != nil {
					log.Fatalf("failed to write row: %v", err)
				}

				// Travel gap before the next visit.
				end += 10 + rng.Intn(30)
				hour, minute = end/60, end%60
				rowIdx++
				total++
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Fatalf("failed to drop default sheet: %v", err)
	}

	if err := f.SaveAs(*path); err != nil {
		log.Fatalf("failed to save workbook: %v", err)
	}

	fmt.Printf("Wrote %d visits to %s\n", total, *path)
}
