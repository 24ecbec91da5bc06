package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	"fieldboard.com/fieldboard/utils"
	web "fieldboard.com/fieldboard/web/common"
)

type PersonScheduleDTO struct {
	PersonnelName string     `json:"personnelName"`
	TotalVisits   int        `json:"totalVisits"`
	TotalMinutes  int        `json:"totalMinutes"`
	Visits        []VisitDTO `json:"visits"`
}

type DailyTimelineDTO struct {
	Snapshot SnapshotDTO `json:"snapshot"`
	Day      model.Day   `json:"day"`

	ActivePersonnel  int `json:"activePersonnel"`
	TotalVisits      int `json:"totalVisits"`
	LocationsCovered int `json:"locationsCovered"`

	Schedules []PersonScheduleDTO `json:"schedules"`
}

// Timeline serves one day's schedule, grouped per agent with visits in
// visit-number order.
func (ep *Endpoint) Timeline(c *gin.Context) {
	day, ok := model.ParseDay(c.Param("day"))
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid day"))
		return
	}

	ds, ok := ep.dataset(c)
	if !ok {
		return
	}
	dayDS := ds.Select(engine.FilterOptions{Days: []model.Day{day}})

	dto := DailyTimelineDTO{
		Snapshot:         SnapshotDTO{ID: dayDS.SnapshotID, LoadedAt: dayDS.LoadedAt},
		Day:              day,
		ActivePersonnel:  dayDS.UniqueCount(engine.ByPersonnel),
		TotalVisits:      dayDS.Len(),
		LocationsCovered: dayDS.UniqueCount(engine.ByLocation),
	}

	byPerson := utils.GroupBy(dayDS.Records(), func(r model.VisitRecord) string {
		return r.PersonnelName
	})
	delete(byPerson, "")

	names := make([]string, 0, len(byPerson))
	for name := range byPerson {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		visits := byPerson[name]
		sort.SliceStable(visits, func(i, j int) bool {
			return visits[i].VisitNumber < visits[j].VisitNumber
		})

		schedule := PersonScheduleDTO{
			PersonnelName: name,
			TotalVisits:   len(visits),
			Visits:        utils.Map(visits, newVisitDTO),
		}
		for _, v := range visits {
			schedule.TotalMinutes += v.DurationMinutes
		}
		dto.Schedules = append(dto.Schedules, schedule)
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}
