package internal

const (
	FieldCountry        = "Country"
	FieldGDPRaw         = "GDP_raw"
	FieldGDPMillions    = "GDP_USD_millions"
	FieldGDPUSDBillions = "GDP_USD_billions"
)

// DefaultFields is the field list the source table is extracted with.
var DefaultFields = []string{FieldCountry, FieldGDPMillions}

type RawRecord struct {
	Country string
	GDP     string
}

type RawRecordSet struct {
	Fields  []string
	Records []RawRecord
}

type Record struct {
	Country        string
	GDPUSDBillions float64
}

// RecordSet is the transformed output. Fields holds the column names in
// output order and is what the CSV header and SQL table are built from.
type RecordSet struct {
	Fields  []string
	Records []Record
}

func (s RecordSet) Len() int {
	return len(s.Records)
}

func (s RawRecordSet) Len() int {
	return len(s.Records)
}
