package engine

import (
	"time"

	"github.com/google/uuid"

	"fieldboard.com/fieldboard/model"
	"fieldboard.com/fieldboard/utils"
)

// Dimension is a grouping key for aggregation queries. The set is closed:
// every view groups by one of these three fields.
type Dimension string

const (
	ByPersonnel Dimension = "personnel_name"
	ByDay       Dimension = "day"
	ByLocation  Dimension = "location"
)

// Key extracts the grouping value of r for the dimension.
func (dim Dimension) Key(r model.VisitRecord) string {
	switch dim {
	case ByPersonnel:
		return r.PersonnelName
	case ByDay:
		return string(r.Day)
	case ByLocation:
		return r.Location
	}
	return ""
}

// Dataset is one immutable snapshot of the normalized records, produced
// fresh on every source fetch. Because records never change after
// normalization, a snapshot can be shared across concurrent queries
// without locking.
type Dataset struct {
	SnapshotID string
	LoadedAt   time.Time

	records []model.VisitRecord
}

// NewDataset wraps normalized records in a tagged snapshot.
func NewDataset(records []model.VisitRecord) *Dataset {
	return &Dataset{
		SnapshotID: uuid.New().String(),
		LoadedAt:   time.Now().UTC(),
		records:    records,
	}
}

func (d *Dataset) Records() []model.VisitRecord {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Empty reports the "no data yet" state: every sheet was missing or blank,
// or a filter matched nothing. Callers treat this as a state, not a fault.
func (d *Dataset) Empty() bool {
	return len(d.records) == 0
}

// FilterOptions is the caller-side subsetting applied before aggregation.
// A nil/empty slice leaves that axis unrestricted.
type FilterOptions struct {
	Days      []model.Day
	Personnel []string
}

func (o FilterOptions) match(r model.VisitRecord) bool {
	if len(o.Days) > 0 {
		if utils.Find(o.Days, func(d model.Day) bool { return d == r.Day }) == nil {
			return false
		}
	}
	if len(o.Personnel) > 0 {
		if utils.Find(o.Personnel, func(p string) bool { return p == r.PersonnelName }) == nil {
			return false
		}
	}
	return true
}

// Select returns a new dataset holding the records matching opts. The
// snapshot tag is carried over: a filtered view is still the same load.
func (d *Dataset) Select(opts FilterOptions) *Dataset {
	return &Dataset{
		SnapshotID: d.SnapshotID,
		LoadedAt:   d.LoadedAt,
		records:    utils.Filter(d.records, opts.match),
	}
}

// CountBy groups the records by dim and returns group key -> row count.
// Records whose key value is empty are skipped, so e.g. rows without a
// personnel name never pollute personnel rankings.
func (d *Dataset) CountBy(dim Dimension) map[string]int {
	counts := make(map[string]int)
	for _, r := range d.records {
		key := dim.Key(r)
		if key == "" {
			continue
		}
		counts[key]++
	}
	return counts
}

// SumDurationBy groups by dim and sums DurationMinutes per group.
func (d *Dataset) SumDurationBy(dim Dimension) map[string]int {
	sums := make(map[string]int)
	for key, group := range d.groups(dim) {
		total := 0
		for _, r := range group {
			total += r.DurationMinutes
		}
		sums[key] = total
	}
	return sums
}

// MeanDurationBy groups by dim and averages DurationMinutes per group.
// A key appears in the result only when its group has rows, so there is
// never a division by zero and never a NaN.
func (d *Dataset) MeanDurationBy(dim Dimension) map[string]float64 {
	means := make(map[string]float64)
	for key, group := range d.groups(dim) {
		if len(group) == 0 {
			continue
		}
		total := 0
		for _, r := range group {
			total += r.DurationMinutes
		}
		means[key] = float64(total) / float64(len(group))
	}
	return means
}

// CrossTab produces the sparse (rows key, cols key) -> count mapping.
// Callers materialize a dense grid, filling absent cells with 0.
func (d *Dataset) CrossTab(rows, cols Dimension) map[string]map[string]int {
	tab := make(map[string]map[string]int)
	for _, r := range d.records {
		rowKey := rows.Key(r)
		colKey := cols.Key(r)
		if rowKey == "" || colKey == "" {
			continue
		}
		if tab[rowKey] == nil {
			tab[rowKey] = make(map[string]int)
		}
		tab[rowKey][colKey]++
	}
	return tab
}

// UniqueCount is the cardinality of distinct non-empty values of dim.
func (d *Dataset) UniqueCount(dim Dimension) int {
	return len(d.CountBy(dim))
}

// GroupKeys returns the distinct non-empty keys of dim in first-seen
// order. Rankings use it to break count ties deterministically.
func (d *Dataset) GroupKeys(dim Dimension) []string {
	keys := utils.GroupKeys(d.records, dim.Key)
	return utils.Filter(keys, func(k string) bool { return k != "" })
}

// MeanDuration is the average duration over the whole dataset, with ok
// false when there are no rows to average.
func (d *Dataset) MeanDuration() (float64, bool) {
	if len(d.records) == 0 {
		return 0, false
	}
	total := 0
	for _, r := range d.records {
		total += r.DurationMinutes
	}
	return float64(total) / float64(len(d.records)), true
}

// TotalDuration is the summed duration over the whole dataset, in minutes.
func (d *Dataset) TotalDuration() int {
	total := 0
	for _, r := range d.records {
		total += r.DurationMinutes
	}
	return total
}

func (d *Dataset) groups(dim Dimension) map[string][]model.VisitRecord {
	grouped := utils.GroupBy(d.records, dim.Key)
	delete(grouped, "")
	return grouped
}
