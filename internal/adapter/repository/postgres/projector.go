package postgres

import (
	"fmt"
	"time"

	"github.com/flight-search/flight-route-query-service/internal/adapter/repository/postgres/query"
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/timeutil"
)

// Record is a leg result row keyed by column name.
type Record map[string]interface{}

// ProjectRow names the values of a positional row using query.LegColumns.
// A row whose length differs from the column sequence returns ErrRowShape.
func ProjectRow(values []interface{}) (Record, error) {
	if len(values) != len(query.LegColumns) {
		return nil, fmt.Errorf("%w: got %d values for %d columns",
			domain.ErrRowShape, len(values), len(query.LegColumns))
	}

	rec := make(Record, len(values))
	for i, col := range query.LegColumns {
		rec[col] = values[i]
	}
	return rec, nil
}

// ProjectLeg projects a positional row straight into a FlightLeg.
func ProjectLeg(values []interface{}) (domain.FlightLeg, error) {
	rec, err := ProjectRow(values)
	if err != nil {
		return domain.FlightLeg{}, err
	}
	return rec.Leg()
}

// Leg decodes the record into a FlightLeg. NULL columns decode to zero values;
// a value of an unexpected type returns ErrRowShape.
func (r Record) Leg() (domain.FlightLeg, error) {
	d := decoder{rec: r}

	leg := domain.FlightLeg{
		LegID:                        d.text(query.ColLegID),
		StartingAirport:              d.text(query.ColStartingAirport),
		DestinationAirport:           d.text(query.ColDestinationAirport),
		FlightDate:                   d.date(query.ColFlightDate),
		TravelDuration:               d.text(query.ColTravelDuration),
		SegmentsDepartureTimeRaw:     d.text(query.ColSegmentsDepartureTimeRaw),
		SegmentsArrivalTimeRaw:       d.text(query.ColSegmentsArrivalTimeRaw),
		SegmentsAirlineCode:          d.text(query.ColSegmentsAirlineCode),
		SegmentsCabinCode:            d.text(query.ColSegmentsCabinCode),
		SegmentsEquipmentDescription: d.text(query.ColSegmentsEquipmentDescription),
		SegmentsDurationInSeconds:    d.integer(query.ColSegmentsDurationInSeconds),
		BaseFare:                     d.number(query.ColBaseFare),
		TotalFare:                    d.number(query.ColTotalFare),
		SeatsRemaining:               int(d.integer(query.ColSeatsRemaining)),
		IsBasicEconomy:               d.flag(query.ColIsBasicEconomy),
		IsRefundable:                 d.flag(query.ColIsRefundable),
		IsNonStop:                    d.flag(query.ColIsNonStop),
		LayoverMinutes:               int(d.integer(query.ColLayoverMinutes)),
	}
	if d.err != nil {
		return domain.FlightLeg{}, d.err
	}

	leg.TravelMinutes = timeutil.ISODurationMinutes(leg.TravelDuration)

	// Unparseable segment timestamps leave Layovers empty.
	if layovers, err := timeutil.LegLayovers(
		domain.Segments(leg.SegmentsArrivalTimeRaw),
		domain.Segments(leg.SegmentsDepartureTimeRaw),
	); err == nil {
		leg.Layovers = layovers
	}

	return leg, nil
}

// decoder reads typed values from a Record and keeps the first error.
type decoder struct {
	rec Record
	err error
}

func (d *decoder) fail(col string, v interface{}) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: column %s has unexpected type %T", domain.ErrRowShape, col, v)
	}
}

func (d *decoder) text(col string) string {
	switch v := d.rec[col].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		d.fail(col, v)
		return ""
	}
}

func (d *decoder) integer(col string) int64 {
	switch v := d.rec[col].(type) {
	case nil:
		return 0
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int:
		return int64(v)
	default:
		d.fail(col, v)
		return 0
	}
}

func (d *decoder) number(col string) float64 {
	switch v := d.rec[col].(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	default:
		d.fail(col, v)
		return 0
	}
}

func (d *decoder) flag(col string) bool {
	switch v := d.rec[col].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		d.fail(col, v)
		return false
	}
}

func (d *decoder) date(col string) time.Time {
	switch v := d.rec[col].(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return timeutil.StartOfDay(v)
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			d.fail(col, v)
			return time.Time{}
		}
		return t
	default:
		d.fail(col, v)
		return time.Time{}
	}
}
