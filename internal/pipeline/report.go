package pipeline

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"gdpetl/internal"
	"gdpetl/internal/storage"
	"gdpetl/internal/util"
)

const minGDPBillions = 100

// FilterQuery is the one report the job runs after loading.
func FilterQuery(tableName string) string {
	return fmt.Sprintf("SELECT * FROM %s WHERE %s >= %d", tableName, internal.FieldGDPUSDBillions, minGDPBillions)
}

// RunFilterQuery prints the statement, executes it and prints the result.
func RunFilterQuery(db *storage.DB, tableName string, w io.Writer) (storage.QueryResult, error) {
	statement := FilterQuery(tableName)
	fmt.Fprintln(w, statement)
	res, err := db.Query(statement)
	if err != nil {
		return storage.QueryResult{}, fmt.Errorf("query %s: %w", tableName, err)
	}
	PrintQueryResult(w, res)
	return res, nil
}

func PrintQueryResult(w io.Writer, res storage.QueryResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := table.Row{""}
	for _, c := range res.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for i, row := range res.Rows {
		r := table.Row{i}
		for _, v := range row {
			r = append(r, cellValue(v))
		}
		t.AppendRow(r)
	}
	t.Render()
}

func cellValue(v any) any {
	switch t := v.(type) {
	case float64:
		return util.FormatFloat(t)
	case []byte:
		return string(t)
	case nil:
		return "NULL"
	default:
		return t
	}
}
