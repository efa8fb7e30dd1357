package pipeline

import (
	"context"
	"fmt"
	"io"

	"gdpetl/internal/config"
	"gdpetl/internal/progress"
	"gdpetl/internal/storage"
)

type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// Progress messages, one per checkpoint, in run order.
const (
	msgStart       = "Preliminaries complete. Initiating ETL process"
	msgExtracted   = "Data extraction complete. Initiating Transformation process"
	msgTransformed = "Data transformation complete. Initiating Loading process"
	msgCSVSaved    = "Data saved to CSV file"
	msgDBConnect   = "SQL Connection initiated"
	msgDBLoaded    = "Data loaded to Database as a table"
	msgQuery       = "Executing queries"
	msgDone        = "Process Complete"
)

type Runner struct {
	cfg     config.Config
	fetcher PageFetcher
	log     *progress.Logger
	out     io.Writer
}

type RunResult struct {
	Extract ExtractStats
	Loaded  int
	Query   storage.QueryResult
}

func NewRunner(cfg config.Config, fetcher PageFetcher, log *progress.Logger, out io.Writer) *Runner {
	return &Runner{cfg: cfg, fetcher: fetcher, log: log, out: out}
}

// Run executes fetch, extract, transform, CSV write, table load and the
// filter query once, in that order. The first failure aborts the run;
// checkpoints already logged stay in the log file.
func (r *Runner) Run(ctx context.Context) (RunResult, error) {
	var result RunResult

	if err := r.log.Log(msgStart); err != nil {
		return result, err
	}
	markup, err := r.fetcher.FetchPage(ctx, r.cfg.SourceURL)
	if err != nil {
		return result, err
	}
	raw, stats, err := ExtractWithStats(markup, r.cfg.FieldNames)
	if err != nil {
		return result, err
	}
	result.Extract = stats

	if err := r.log.Log(msgExtracted); err != nil {
		return result, err
	}
	records, err := Transform(raw)
	if err != nil {
		return result, err
	}

	if err := r.log.Log(msgTransformed); err != nil {
		return result, err
	}
	if err := WriteCSV(records, r.cfg.CSVPath); err != nil {
		return result, fmt.Errorf("write csv: %w", err)
	}
	if err := r.log.Log(msgCSVSaved); err != nil {
		return result, err
	}

	if err := r.log.Log(msgDBConnect); err != nil {
		return result, err
	}
	db, err := storage.Open(r.cfg.DBPath)
	if err != nil {
		return result, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceTable(r.cfg.TableName, records); err != nil {
		return result, err
	}
	result.Loaded = records.Len()
	if err := r.log.Log(msgDBLoaded); err != nil {
		return result, err
	}

	if err := r.log.Log(msgQuery); err != nil {
		return result, err
	}
	res, err := RunFilterQuery(db, r.cfg.TableName, r.out)
	if err != nil {
		return result, err
	}
	result.Query = res

	if err := r.log.Log(msgDone); err != nil {
		return result, err
	}
	return result, nil
}
