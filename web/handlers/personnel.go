package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	web "fieldboard.com/fieldboard/web/common"
)

type PersonnelDetailDTO struct {
	Snapshot SnapshotDTO `json:"snapshot"`
	Name     string      `json:"name"`

	TotalVisits     int     `json:"totalVisits"`
	DaysWorked      int     `json:"daysWorked"`
	UniqueLocations int     `json:"uniqueLocations"`
	FieldHours      float64 `json:"fieldHours"`

	VisitsPerDay   []DayCountDTO      `json:"visitsPerDay"`
	TimeByLocation []LocationStatsDTO `json:"timeByLocation"`
	Timeline       []VisitDTO         `json:"timeline"`
}

// ListPersonnel serves the roster of field agents seen in the dataset.
func (ep *Endpoint) ListPersonnel(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	names := ds.GroupKeys(engine.ByPersonnel)
	sort.Strings(names)

	c.JSON(http.StatusOK, web.NewSuccessResponse(names))
}

// PersonnelDetail serves the individual performance view for one agent.
func (ep *Endpoint) PersonnelDetail(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	name := c.Param("name")
	pds := ds.Select(engine.FilterOptions{Personnel: []string{name}})
	if pds.Empty() {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Personnel not found"))
		return
	}

	dto := PersonnelDetailDTO{
		Snapshot:        SnapshotDTO{ID: pds.SnapshotID, LoadedAt: pds.LoadedAt},
		Name:            name,
		TotalVisits:     pds.Len(),
		DaysWorked:      pds.UniqueCount(engine.ByDay),
		UniqueLocations: pds.UniqueCount(engine.ByLocation),
		FieldHours:      float64(pds.TotalDuration()) / 60,
		VisitsPerDay:    dailyTrend(pds),
		TimeByLocation:  timeByLocation(pds, 10),
		Timeline:        visitTimeline(pds),
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}

// timeByLocation ranks locations by total minutes spent there.
func timeByLocation(ds *engine.Dataset, limit int) []LocationStatsDTO {
	counts := ds.CountBy(engine.ByLocation)
	sums := ds.SumDurationBy(engine.ByLocation)
	means := ds.MeanDurationBy(engine.ByLocation)

	keys := ds.GroupKeys(engine.ByLocation)
	ranked := make([]string, len(keys))
	copy(ranked, keys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sums[ranked[i]] > sums[ranked[j]]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	stats := make([]LocationStatsDTO, 0, len(ranked))
	for _, location := range ranked {
		stats = append(stats, LocationStatsDTO{
			Location:           location,
			Visits:             counts[location],
			AvgDurationMinutes: means[location],
			TotalMinutes:       sums[location],
		})
	}
	return stats
}

// visitTimeline orders an agent's visits by day, then visit number.
func visitTimeline(ds *engine.Dataset) []VisitDTO {
	records := make([]model.VisitRecord, len(ds.Records()))
	copy(records, ds.Records())

	sort.SliceStable(records, func(i, j int) bool {
		di, dj := model.DayIndex(records[i].Day), model.DayIndex(records[j].Day)
		if di != dj {
			return di < dj
		}
		return records[i].VisitNumber < records[j].VisitNumber
	})

	timeline := make([]VisitDTO, 0, len(records))
	for _, r := range records {
		timeline = append(timeline, newVisitDTO(r))
	}
	return timeline
}
