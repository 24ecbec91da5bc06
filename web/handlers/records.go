package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	web "fieldboard.com/fieldboard/web/common"
)

type recordsQuery struct {
	Limit  *int `form:"limit" json:"limit" binding:"omitempty,min=0"`
	Offset int  `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

// Records serves a page of the normalized dataset. Negative paging values
// are rejected up front; feeding them into the slice below would panic.
func (ep *Endpoint) Records(c *gin.Context) {
	var query recordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	limit := 1000
	if query.Limit != nil {
		limit = *query.Limit
	}
	offset := query.Offset

	records := ds.Records()
	total := int64(len(records))

	if offset > len(records) {
		offset = len(records)
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(records[offset:end], total))
}

type FiltersDTO struct {
	Days      []model.Day `json:"days"`
	Personnel []string    `json:"personnel"`
}

// Filters serves the values the dashboard filter widgets can offer.
func (ep *Endpoint) Filters(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	names := ds.GroupKeys(engine.ByPersonnel)
	sort.Strings(names)

	c.JSON(http.StatusOK, web.NewSuccessResponse(FiltersDTO{
		Days:      orderedDays(ds),
		Personnel: names,
	}))
}

var exportHeader = []interface{}{
	"Day",
	model.ColPersonnelName,
	model.ColVisitNumber,
	model.ColLocation,
	model.ColCheckInTime,
	model.ColCheckOutTime,
	"Duration (min)",
	model.ColLoginTime,
	model.ColLogoutTime,
	model.ColMapsLink,
	model.ColSelfie,
}

// Export writes the filtered dataset back out as an .xlsx workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	ds, ok := ep.dataset(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Visits"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	for i, r := range ds.Records() {
		row := []interface{}{
			string(r.Day),
			r.PersonnelName,
			r.VisitNumber,
			r.Location,
			timeCell(r.CheckInTime),
			timeCell(r.CheckOutTime),
			r.DurationMinutes,
			timeCell(r.LoginTime),
			timeCell(r.LogoutTime),
			r.MapsLink,
			r.Selfie,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "visits.xlsx"))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func timeCell(t *model.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}
