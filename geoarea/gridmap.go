package geoarea

import (
	"github.com/golang/geo/s2"

	"waste-impact-service/models"
)

// S2 cell levels used for the map aggregation. Level 16 cells are roughly
// city-block sized.
const (
	MinCellLevel     = 6
	MaxCellLevel     = 16
	DefaultCellLevel = 16
)

type cellUnit struct {
	cnt      int64
	origCell s2.CellID
}

// MapAggregator buckets report coordinates into s2 cells at a fixed level
// for map rendering.
type MapAggregator struct {
	level int
	cells map[s2.CellID]*cellUnit
}

// NewMapAggregator returns an aggregator at the given cell level, clamped
// to the supported range.
func NewMapAggregator(level int) *MapAggregator {
	if level < MinCellLevel {
		level = MinCellLevel
	}
	if level > MaxCellLevel {
		level = MaxCellLevel
	}
	return &MapAggregator{
		level: level,
		cells: make(map[s2.CellID]*cellUnit),
	}
}

// AddPoint adds one report coordinate to its parent cell.
func (a *MapAggregator) AddPoint(lat, lon float64) {
	pc := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon))
	parent := pc.Parent(a.level)
	if _, ok := a.cells[parent]; !ok {
		a.cells[parent] = &cellUnit{}
	}
	a.cells[parent].cnt += 1
	a.cells[parent].origCell = pc
}

// ToArray returns one point per non-empty cell. A cell holding a single
// report keeps that report's exact position; aggregated cells report the
// cell center.
func (a *MapAggregator) ToArray() []models.MapPoint {
	r := make([]models.MapPoint, 0, len(a.cells))
	for c, unit := range a.cells {
		ll := c.LatLng()
		if unit.cnt == 1 {
			ll = unit.origCell.LatLng()
		}
		r = append(r, models.MapPoint{
			Latitude:  ll.Lat.Degrees(),
			Longitude: ll.Lng.Degrees(),
			Count:     unit.cnt,
		})
	}
	return r
}

// AggregateHazardousMap builds the hotspot map layer from reports that have
// coordinates. The caller pre-filters to hazardous categories.
func AggregateHazardousMap(reports []models.ReportRecord, level int) []models.MapPoint {
	a := NewMapAggregator(level)
	for i := range reports {
		r := &reports[i]
		if r.Latitude == nil || r.Longitude == nil {
			continue
		}
		a.AddPoint(*r.Latitude, *r.Longitude)
	}
	return a.ToArray()
}
