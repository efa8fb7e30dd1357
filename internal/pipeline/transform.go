package pipeline

import (
	"fmt"

	"gdpetl/internal"
	"gdpetl/internal/util"
)

// Transform converts each GDP figure from millions of USD text into billions
// rounded half-to-even to 2 places, and renames the value field to
// GDP_USD_billions. Any unparseable figure fails the whole set.
func Transform(in internal.RawRecordSet) (internal.RecordSet, error) {
	if len(in.Fields) != 2 {
		return internal.RecordSet{}, fmt.Errorf("%w: want [country, value] fields, got %v", internal.ErrFieldNotFound, in.Fields)
	}
	switch in.Fields[1] {
	case internal.FieldGDPMillions, internal.FieldGDPRaw:
	default:
		return internal.RecordSet{}, fmt.Errorf("%w: %s or %s not in %v", internal.ErrFieldNotFound, internal.FieldGDPMillions, internal.FieldGDPRaw, in.Fields)
	}

	out := internal.RecordSet{
		Fields:  []string{in.Fields[0], internal.FieldGDPUSDBillions},
		Records: make([]internal.Record, 0, len(in.Records)),
	}
	for i, rec := range in.Records {
		millions, err := util.ParseAmount(rec.GDP)
		if err != nil {
			return internal.RecordSet{}, &internal.ParseError{Index: i, Value: rec.GDP, Err: err}
		}
		out.Records = append(out.Records, internal.Record{
			Country:        rec.Country,
			GDPUSDBillions: util.RoundHalfEven(millions/1000, 2),
		})
	}
	return out, nil
}
