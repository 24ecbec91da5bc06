package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	web "fieldboard.com/fieldboard/web/common"
)

type LocationAnalysisDTO struct {
	Snapshot SnapshotDTO `json:"snapshot"`
	NoData   bool        `json:"noData"`

	LocationsCovered      int     `json:"locationsCovered"`
	MaxVisits             int     `json:"maxVisits"`
	OverallAvgDurationMin float64 `json:"overallAvgDurationMinutes"`

	Locations []LocationStatsDTO `json:"locations"`
}

// Locations serves the per-location statistics table, sorted by visit
// count descending.
func (ep *Endpoint) Locations(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	dto := LocationAnalysisDTO{
		Snapshot: SnapshotDTO{ID: ds.SnapshotID, LoadedAt: ds.LoadedAt},
	}

	if ds.Empty() {
		dto.NoData = true
		c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
		return
	}

	counts := ds.CountBy(engine.ByLocation)
	sums := ds.SumDurationBy(engine.ByLocation)
	means := ds.MeanDurationBy(engine.ByLocation)
	personnelPerLocation := ds.CrossTab(engine.ByLocation, engine.ByPersonnel)

	for _, location := range rankedKeys(ds.GroupKeys(engine.ByLocation), counts) {
		stats := LocationStatsDTO{
			Location:           location,
			Visits:             counts[location],
			Personnel:          len(personnelPerLocation[location]),
			AvgDurationMinutes: means[location],
			TotalMinutes:       sums[location],
		}
		dto.Locations = append(dto.Locations, stats)

		if stats.Visits > dto.MaxVisits {
			dto.MaxVisits = stats.Visits
		}
		dto.OverallAvgDurationMin += stats.AvgDurationMinutes
	}

	dto.LocationsCovered = len(dto.Locations)
	if dto.LocationsCovered > 0 {
		// Average of the per-location averages, matching the headline the
		// location view has always shown.
		dto.OverallAvgDurationMin /= float64(dto.LocationsCovered)
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}
