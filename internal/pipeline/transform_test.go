package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gdpetl/internal"
)

func rawSet(values ...string) internal.RawRecordSet {
	set := internal.RawRecordSet{Fields: internal.DefaultFields}
	for i, v := range values {
		set.Records = append(set.Records, internal.RawRecord{Country: string(rune('A' + i)), GDP: v})
	}
	return set
}

func TestTransformValues(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "decimal input", raw: "1,234.5", want: 1.23},
		{name: "half to even below", raw: "1005", want: 1.0},
		{name: "exact half down", raw: "125", want: 0.12},
		{name: "exact half up", raw: "375", want: 0.38},
		{name: "thousands", raw: "2,000", want: 2.0},
		{name: "large", raw: "26,854,599", want: 26854.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Transform(rawSet(tc.raw))
			if err != nil {
				t.Fatal(err)
			}
			if got := out.Records[0].GDPUSDBillions; got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestTransformRenamesFieldAndKeepsEveryRecord(t *testing.T) {
	in := internal.RawRecordSet{
		Fields: []string{"Country", "GDP_raw"},
		Records: []internal.RawRecord{
			{Country: "B", GDP: "3,000"},
			{Country: "A", GDP: "1,000"},
			{Country: "B", GDP: "3,000"},
		},
	}
	out, err := Transform(in)
	if err != nil {
		t.Fatal(err)
	}
	want := internal.RecordSet{
		Fields: []string{"Country", "GDP_USD_billions"},
		Records: []internal.Record{
			{Country: "B", GDPUSDBillions: 3},
			{Country: "A", GDPUSDBillions: 1},
			{Country: "B", GDPUSDBillions: 3},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("set (-want +got):\n%s", diff)
	}
}

func TestTransformParseError(t *testing.T) {
	for _, raw := range []string{"", "n/a", "1,2x", "NaN"} {
		_, err := Transform(rawSet("1,000", raw))
		var parseErr *internal.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("raw %q: got %v", raw, err)
		}
		if parseErr.Index != 1 || parseErr.Value != raw {
			t.Fatalf("raw %q: index=%d value=%q", raw, parseErr.Index, parseErr.Value)
		}
	}
}

func TestTransformTwiceFails(t *testing.T) {
	out, err := Transform(rawSet("2,000"))
	if err != nil {
		t.Fatal(err)
	}

	again := internal.RawRecordSet{Fields: out.Fields}
	for _, rec := range out.Records {
		again.Records = append(again.Records, internal.RawRecord{Country: rec.Country, GDP: "2.0"})
	}
	if _, err := Transform(again); !errors.Is(err, internal.ErrFieldNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestTransformEmpty(t *testing.T) {
	out, err := Transform(internal.RawRecordSet{Fields: internal.DefaultFields})
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 || len(out.Fields) != 2 {
		t.Fatalf("got %+v", out)
	}
}

func TestExtractThenTransform(t *testing.T) {
	markup := `<html><body>
<table><tbody><tr><td>one</td></tr></tbody></table>
<table><tbody><tr><td>two</td></tr></tbody></table>
<table><tbody>
<tr><th>Country</th><th>Region</th><th>GDP</th></tr>
<tr><td><a href="/wiki/A">Country A</a></td><td>X</td><td>2,000</td></tr>
<tr><td><a href="/wiki/B">Country B</a></td><td>X</td><td>—</td></tr>
</tbody></table>
</body></html>`

	raw, err := Extract(markup, internal.DefaultFields)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Transform(raw)
	if err != nil {
		t.Fatal(err)
	}
	want := []internal.Record{{Country: "Country A", GDPUSDBillions: 2.0}}
	if diff := cmp.Diff(want, out.Records); diff != "" {
		t.Fatalf("records (-want +got):\n%s", diff)
	}
}
