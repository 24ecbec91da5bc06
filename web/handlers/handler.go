package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/engine"
	"fieldboard.com/fieldboard/model"
	"fieldboard.com/fieldboard/source"
	web "fieldboard.com/fieldboard/web/common"
)

type Endpoint struct {
	Reader source.Reader
}

func Register(r *gin.RouterGroup, reader source.Reader) {
	endpoint := &Endpoint{Reader: reader}
	r.GET("/overview", endpoint.Overview)
	r.GET("/heatmap", endpoint.Heatmap)
	r.GET("/personnel", endpoint.ListPersonnel)
	r.GET("/personnel/:name", endpoint.PersonnelDetail)
	r.GET("/locations", endpoint.Locations)
	r.GET("/timeline/:day", endpoint.Timeline)
	r.GET("/records", endpoint.Records)
	r.GET("/filters", endpoint.Filters)
	r.GET("/export", endpoint.Export)
}

// dataset pulls a fresh snapshot from the source, normalizes it and applies
// the days/personnel query filters. Every request re-reads the source; the
// dashboard shows whatever the field logger app last wrote.
func (ep *Endpoint) dataset(c *gin.Context) (*engine.Dataset, bool) {
	tables, err := ep.Reader.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return nil, false
	}

	ds := engine.NewDataset(engine.Normalize(tables))
	return ds.Select(filterOptions(c)), true
}

// filterOptions reads the ?days= and ?personnel= comma-separated filters.
// Unknown day labels are dropped rather than rejected.
func filterOptions(c *gin.Context) engine.FilterOptions {
	var opts engine.FilterOptions

	for _, raw := range splitParam(c.Query("days")) {
		if day, ok := model.ParseDay(raw); ok {
			opts.Days = append(opts.Days, day)
		}
	}
	opts.Personnel = splitParam(c.Query("personnel"))

	return opts
}

func splitParam(raw string) []string {
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
