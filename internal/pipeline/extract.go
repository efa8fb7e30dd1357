package pipeline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gdpetl/internal"
	"gdpetl/internal/util"
)

// targetBody is the position of the GDP table among the page's tbody
// elements. The archived page renders two layout tables before it.
const targetBody = 2

const noData = "—"

type ExtractStats struct {
	Rows    int
	Skipped int
	Dropped int
	Kept    int
}

// Extract reads the GDP table out of markup. Rows without td cells are
// skipped, and rows failing the country-link or GDP-value checks are
// dropped without error.
func Extract(markup string, fields []string) (internal.RawRecordSet, error) {
	set, _, err := ExtractWithStats(markup, fields)
	return set, err
}

func ExtractWithStats(markup string, fields []string) (internal.RawRecordSet, ExtractStats, error) {
	var stats ExtractStats
	if len(fields) != 2 {
		return internal.RawRecordSet{}, stats, &internal.StructureError{Reason: fmt.Sprintf("want 2 fields, got %d", len(fields))}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return internal.RawRecordSet{}, stats, &internal.StructureError{Reason: err.Error()}
	}

	bodies := doc.Find("tbody")
	if bodies.Length() <= targetBody {
		return internal.RawRecordSet{}, stats, &internal.StructureError{Reason: fmt.Sprintf("found %d tbody elements, need at least %d", bodies.Length(), targetBody+1)}
	}

	rows := bodies.Eq(targetBody).Find("tr")
	if rows.Length() == 0 {
		return internal.RawRecordSet{}, stats, &internal.StructureError{Reason: "target table has no rows"}
	}

	out := internal.RawRecordSet{
		Fields:  append([]string(nil), fields...),
		Records: make([]internal.RawRecord, 0, rows.Length()),
	}

	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		stats.Rows++
		cells := row.Find("td")
		if cells.Length() == 0 {
			stats.Skipped++
			return true
		}
		if !hasCountryLink(cells) {
			stats.Dropped++
			return true
		}
		if cells.Length() < 3 {
			rowErr = &internal.MalformedRowError{Row: i, Cells: cells.Length()}
			return false
		}
		if !hasGDPValue(cells) {
			stats.Dropped++
			return true
		}

		out.Records = append(out.Records, internal.RawRecord{
			Country: util.CellText(cells.Eq(0).Find("a").First().Text()),
			GDP:     util.CellText(cells.Eq(2).Text()),
		})
		stats.Kept++
		return true
	})
	if rowErr != nil {
		return internal.RawRecordSet{}, stats, rowErr
	}

	return out, stats, nil
}

// hasCountryLink reports whether the first cell holds a hyperlink. Footnote
// and aggregate rows in the source have plain-text names.
func hasCountryLink(cells *goquery.Selection) bool {
	if cells.Length() == 0 {
		return false
	}
	return cells.Eq(0).Find("a").Length() > 0
}

// hasGDPValue reports whether the third cell carries a figure rather than
// the em-dash the source uses for missing data.
func hasGDPValue(cells *goquery.Selection) bool {
	if cells.Length() < 3 {
		return false
	}
	return util.CellText(cells.Eq(2).Text()) != noData
}
