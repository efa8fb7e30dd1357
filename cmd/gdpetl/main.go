package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gdpetl/internal/config"
	"gdpetl/internal/pipeline"
	"gdpetl/internal/progress"
	"gdpetl/internal/source"
	"gdpetl/internal/storage"
)

var errUsage = errors.New("unknown command")

func main() {
	cfg, err := config.Load()
	must(err)
	must(cfg.Validate())

	cmd := "run"
	var args []string
	if len(os.Args) >= 2 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = dispatch(ctx, cfg, cmd, args)
	cancel()
	if errors.Is(err, errUsage) {
		usage()
		os.Exit(1)
	}
	must(err)
}

// dispatch runs one command. Every handle it opens is closed before it
// returns, so must never exits with a live connection.
func dispatch(ctx context.Context, cfg config.Config, cmd string, args []string) error {
	switch cmd {
	case "run":
		runner := pipeline.NewRunner(cfg, source.NewClient(cfg), progress.NewLogger(cfg.LogPath), os.Stdout)
		res, err := runner.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("run done rows=%d dropped=%d csv=%s db=%s table=%s\n",
			res.Loaded, res.Extract.Dropped, cfg.CSVPath, cfg.DBPath, cfg.TableName)
		return nil
	case "query":
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		_, err = pipeline.RunFilterQuery(db, cfg.TableName, os.Stdout)
		return err
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", cfg.XLSXPath, "output xlsx path")
		_ = fs.Parse(args)
		if strings.TrimSpace(*out) == "" {
			return fmt.Errorf("--out is required")
		}
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		set, err := db.ReadRecords(cfg.TableName)
		if err != nil {
			return err
		}
		if set.Len() == 0 {
			return fmt.Errorf("no rows in table %s", cfg.TableName)
		}
		if err := pipeline.ExportRecordsToXLSX(set, *out); err != nil {
			return err
		}
		fmt.Printf("exported %d rows to %s\n", set.Len(), *out)
		return nil
	default:
		return errUsage
	}
}

func usage() {
	fmt.Println("usage: gdpetl [command]")
	fmt.Println("commands:")
	fmt.Println("  run                        fetch, transform and load the GDP table (default)")
	fmt.Println("  query                      print countries with GDP >= 100 billion USD")
	fmt.Println("  export:xlsx --out=...xlsx  export the loaded table to a workbook")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
