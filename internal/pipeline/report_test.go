package pipeline

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gdpetl/internal/storage"
)

func TestFilterQuery(t *testing.T) {
	got := FilterQuery("Countries_by_GDP")
	want := "SELECT * FROM Countries_by_GDP WHERE GDP_USD_billions >= 100"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestRunFilterQuery(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "gdp.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.ReplaceTable("Countries_by_GDP", sampleSet()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	res, err := RunFilterQuery(db, "Countries_by_GDP", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("rows=%d", len(res.Rows))
	}

	out := buf.String()
	if !strings.HasPrefix(out, FilterQuery("Countries_by_GDP")+"\n") {
		t.Fatalf("statement not printed first:\n%s", out)
	}
	for _, want := range []string{"United States", "26854.6", "Korea, South", "1721.91"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Country A") {
		t.Fatalf("row below threshold printed:\n%s", out)
	}
}

func TestRunFilterQueryMissingTable(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "gdp.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var buf bytes.Buffer
	if _, err := RunFilterQuery(db, "Countries_by_GDP", &buf); err == nil {
		t.Fatal("expected error")
	}
}
