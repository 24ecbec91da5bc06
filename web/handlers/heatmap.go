package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	web "fieldboard.com/fieldboard/web/common"
)

type HeatmapDTO struct {
	Snapshot  SnapshotDTO `json:"snapshot"`
	Personnel []string    `json:"personnel"`
	Days      []model.Day `json:"days"`
	// Counts[i][j] is the visit count of Personnel[i] on Days[j].
	Counts [][]int `json:"counts"`
}

// Heatmap materializes the sparse person x day cross-tabulation into the
// dense grid the activity chart needs, absent cells filled with 0.
func (ep *Endpoint) Heatmap(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	tab := ds.CrossTab(engine.ByPersonnel, engine.ByDay)
	days := orderedDays(ds)

	personnel := make([]string, 0, len(tab))
	for name := range tab {
		personnel = append(personnel, name)
	}
	sort.Strings(personnel)

	counts := make([][]int, len(personnel))
	for i, name := range personnel {
		row := make([]int, len(days))
		for j, day := range days {
			row[j] = tab[name][string(day)]
		}
		counts[i] = row
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(HeatmapDTO{
		Snapshot:  SnapshotDTO{ID: ds.SnapshotID, LoadedAt: ds.LoadedAt},
		Personnel: personnel,
		Days:      days,
		Counts:    counts,
	}))
}

// orderedDays returns the days present in the dataset, in canonical
// Monday..Saturday order.
func orderedDays(ds *engine.Dataset) []model.Day {
	counts := ds.CountBy(engine.ByDay)

	var days []model.Day
	for _, day := range model.Days {
		if counts[string(day)] > 0 {
			days = append(days, day)
		}
	}
	return days
}
