package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	web "fieldboard.com/fieldboard/web/common"
)

type OverviewDTO struct {
	Snapshot SnapshotDTO `json:"snapshot"`
	NoData   bool        `json:"noData"`

	Personnel          int     `json:"personnel"`
	TotalVisits        int     `json:"totalVisits"`
	Locations          int     `json:"locations"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
	AvgVisitsPerPerson float64 `json:"avgVisitsPerPerson"`
	VisitsPerDay       float64 `json:"visitsPerDay"`

	VisitsByPersonnel []PersonnelStatsDTO `json:"visitsByPersonnel"`
	DailyTrend        []DayCountDTO       `json:"dailyTrend"`
	TopLocations      []LocationCountDTO  `json:"topLocations"`
}

// Overview serves the team view: KPIs, visits per personnel, the daily
// trend in canonical day order and the most visited locations.
func (ep *Endpoint) Overview(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	dto := OverviewDTO{
		Snapshot: SnapshotDTO{ID: ds.SnapshotID, LoadedAt: ds.LoadedAt},
	}

	if ds.Empty() {
		dto.NoData = true
		c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
		return
	}

	dto.TotalVisits = ds.Len()
	dto.Personnel = ds.UniqueCount(engine.ByPersonnel)
	dto.Locations = ds.UniqueCount(engine.ByLocation)
	if mean, ok := ds.MeanDuration(); ok {
		dto.AvgDurationMinutes = mean
	}
	if dto.Personnel > 0 {
		dto.AvgVisitsPerPerson = float64(dto.TotalVisits) / float64(dto.Personnel)
	}
	if days := ds.UniqueCount(engine.ByDay); days > 0 {
		dto.VisitsPerDay = float64(dto.TotalVisits) / float64(days)
	}

	dto.VisitsByPersonnel = personnelStats(ds)
	dto.DailyTrend = dailyTrend(ds)
	dto.TopLocations = topLocations(ds, limitParam(c, 15))

	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}

func personnelStats(ds *engine.Dataset) []PersonnelStatsDTO {
	counts := ds.CountBy(engine.ByPersonnel)
	sums := ds.SumDurationBy(engine.ByPersonnel)
	means := ds.MeanDurationBy(engine.ByPersonnel)

	stats := make([]PersonnelStatsDTO, 0, len(counts))
	for _, name := range rankedKeys(ds.GroupKeys(engine.ByPersonnel), counts) {
		stats = append(stats, PersonnelStatsDTO{
			Name:               name,
			Visits:             counts[name],
			AvgDurationMinutes: means[name],
			TotalMinutes:       sums[name],
			FieldHours:         float64(sums[name]) / 60,
		})
	}
	return stats
}

func dailyTrend(ds *engine.Dataset) []DayCountDTO {
	counts := ds.CountBy(engine.ByDay)

	var trend []DayCountDTO
	for _, day := range orderedDays(ds) {
		trend = append(trend, DayCountDTO{Day: day, Visits: counts[string(day)]})
	}
	return trend
}

func topLocations(ds *engine.Dataset, limit int) []LocationCountDTO {
	counts := ds.CountBy(engine.ByLocation)
	ranked := rankedKeys(ds.GroupKeys(engine.ByLocation), counts)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]LocationCountDTO, 0, len(ranked))
	for _, location := range ranked {
		top = append(top, LocationCountDTO{Location: location, Visits: counts[location]})
	}
	return top
}

// rankedKeys orders keys by descending count. The incoming keys are in
// first-seen dataset order and the sort is stable, so ties break
// deterministically for a fixed input order.
func rankedKeys(keys []string, counts map[string]int) []string {
	ranked := make([]string, len(keys))
	copy(ranked, keys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

func limitParam(c *gin.Context, fallback int) int {
	if val, err := strconv.Atoi(c.Query("limit")); err == nil && val > 0 {
		return val
	}
	return fallback
}
