package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/output"
	"github.com/sells-group/outreach-cli/internal/pipeline"
	"github.com/sells-group/outreach-cli/internal/source"
)

var (
	runSource   string
	runOutput   string
	runLimit    int
	runStrict   bool
	runExtended bool
	runOpener   bool
	runDryRun   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Enrich every lead in the source sheet and write the result CSV",
	Long: `Downloads the lead sheet, probes each lead's website, generates a company
profile and a tailored outreach email per lead, and writes enriched_results.csv.

The source may be an http(s):// CSV export link, an ftp:// URL, or a local
.csv/.xlsx path.

Examples:
  # Dry run — download and print parsed leads, no scraping or completions
  outreach-cli run --dry-run

  # Enrich a local spreadsheet export, first 5 rows only
  outreach-cli run --source leads.xlsx --limit 5

  # Abort on the first completion failure instead of recording it per row
  outreach-cli run --strict`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		location := runSource
		if location == "" {
			location = cfg.Source.URL
		}
		if location == "" {
			return eris.New("run: lead source required (--source or OUTREACH_SOURCE_URL)")
		}

		reader, err := source.New(location, source.Options{
			Timeout: time.Duration(cfg.Source.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return err
		}
		if runLimit > 0 {
			reader = &limitedReader{inner: reader, limit: runLimit}
		}

		if runDryRun {
			return printLeadsJSON(ctx, reader)
		}

		env, err := newEnv(runOpener || cfg.Compose.PersonalOpener)
		if err != nil {
			return err
		}

		outPath := runOutput
		if outPath == "" {
			outPath = cfg.Output.Path
		}
		writer := &output.Writer{
			BOM:      cfg.Output.BOM,
			Extended: runExtended || cfg.Output.Extended,
		}

		p := pipeline.New(reader, env.prober, env.composer, writer, pipeline.Options{
			OutputPath: outPath,
			MinDelay:   time.Duration(cfg.Pipeline.MinDelayMillis) * time.Millisecond,
			MaxDelay:   time.Duration(cfg.Pipeline.MaxDelayMillis) * time.Millisecond,
			Strict:     runStrict || cfg.Pipeline.Strict,
		})

		summary, err := p.Run(ctx)
		if err != nil {
			return err
		}

		summary.Log()
		env.completer.Usage().LogCost(env.completer.Model(), "run")
		return nil
	},
}

// limitedReader caps the number of leads read from the underlying source.
type limitedReader struct {
	inner source.Reader
	limit int
}

func (l *limitedReader) Read(ctx context.Context) (*model.LeadSet, error) {
	set, err := l.inner.Read(ctx)
	if err != nil {
		return nil, err
	}
	if l.limit < len(set.Leads) {
		set.Leads = set.Leads[:l.limit]
	}
	return set, nil
}

func printLeadsJSON(ctx context.Context, reader source.Reader) error {
	set, err := reader.Read(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(set.Leads, "", "  ")
	if err != nil {
		return eris.Wrap(err, "run: marshal leads")
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runSource, "source", "", "lead source URL or path (default from config)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output CSV path (default from config)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "enrich at most N leads (0 = all)")
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "abort the run on the first completion failure")
	runCmd.Flags().BoolVar(&runExtended, "extended", false, "include EmailFound and LocationGuess columns")
	runCmd.Flags().BoolVar(&runOpener, "opener", false, "generate a personalized opening sentence per email")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "parse and print leads without enriching")
	rootCmd.AddCommand(runCmd)
}
