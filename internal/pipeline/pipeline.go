// Package pipeline drives the lead enrichment run: read leads once, probe
// and compose per lead in input order, write the result table once at the
// end.
package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/output"
	"github.com/sells-group/outreach-cli/internal/probe"
	"github.com/sells-group/outreach-cli/internal/source"
)

// Composer generates the profile and outreach email for one lead.
// Satisfied by *compose.Composer.
type Composer interface {
	Compose(ctx context.Context, lead model.Lead, probed model.ProbeResult) (profile, email string, err error)
}

// Options configures the driver.
type Options struct {
	OutputPath string
	MinDelay   time.Duration // politeness delay between leads; default 1s
	MaxDelay   time.Duration // default 2s
	// Strict aborts the whole run on the first completion failure instead
	// of recording it per row.
	Strict bool
}

// Enricher turns one lead into one enriched row. It is the per-lead core
// shared by the batch driver and the webhook server.
type Enricher struct {
	prober   probe.Prober
	composer Composer
}

// NewEnricher creates an Enricher.
func NewEnricher(prober probe.Prober, composer Composer) *Enricher {
	return &Enricher{prober: prober, composer: composer}
}

// Pipeline orchestrates source → probe → compose → output sequentially.
// There is no parallel fan-out: input row order is output row order.
type Pipeline struct {
	*Enricher
	src    source.Reader
	writer *output.Writer
	opts   Options
}

// New creates a Pipeline.
func New(src source.Reader, prober probe.Prober, composer Composer, writer *output.Writer, opts Options) *Pipeline {
	if opts.MinDelay == 0 && opts.MaxDelay == 0 {
		opts.MinDelay = 1 * time.Second
		opts.MaxDelay = 2 * time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}
	return &Pipeline{
		Enricher: NewEnricher(prober, composer),
		src:      src,
		writer:   writer,
		opts:     opts,
	}
}

// Run executes the full enrichment pass and writes the result table.
// Every input row produces exactly one output row unless the run aborts.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary()
	log := zap.L().With(zap.String("run_id", summary.RunID))

	set, err := p.src.Read(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: read leads")
	}
	summary.Leads = len(set.Leads)
	log.Info("pipeline: starting run", zap.Int("leads", len(set.Leads)))

	rows := make([]model.EnrichedLead, 0, len(set.Leads))
	for i, lead := range set.Leads {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "pipeline: run cancelled")
		}

		log.Info("pipeline: enriching lead",
			zap.Int("row", i+1),
			zap.String("company", lead.Company),
			zap.String("website", lead.Website),
		)

		row, enrichErr := p.Enrich(ctx, lead)
		if enrichErr != nil {
			if p.opts.Strict {
				return nil, eris.Wrap(enrichErr, "pipeline: enrich lead")
			}
			// Record the failure on the row and keep going; aborting the
			// whole run would discard every already-enriched lead.
			summary.CompletionFailures++
			log.Error("pipeline: completion failed for lead",
				zap.String("company", lead.Company),
				zap.Error(enrichErr),
			)
			row.ScrapeError = joinErrors(row.ScrapeError, "completion_error: "+enrichErr.Error())
		}
		if row.ScrapeError != "" && enrichErr == nil {
			summary.ProbeFailures++
		}
		rows = append(rows, row)

		if i < len(set.Leads)-1 {
			p.politeSleep(ctx)
		}
	}

	if err := p.writer.WriteFile(p.opts.OutputPath, set.Header, rows); err != nil {
		return nil, eris.Wrap(err, "pipeline: write results")
	}

	summary.Finish()
	return summary, nil
}

// Enrich probes and composes a single lead. A probe failure degrades to
// placeholder signals recorded on the row; a completion failure is
// returned as err alongside the partially filled row.
func (p *Enricher) Enrich(ctx context.Context, lead model.Lead) (model.EnrichedLead, error) {
	probed := p.prober.Probe(ctx, lead.Website)
	if probed.Error != "" {
		// Compose still runs so the row gets a profile and email seeded
		// from the placeholder brief.
		probed.Brief = probe.PlaceholderBrief
	}

	row := model.EnrichedLead{
		Lead:          lead,
		Phone:         probed.Phone,
		ScrapeError:   probed.Error,
		EmailFound:    probed.EmailFound,
		LocationGuess: probed.LocationGuess,
	}

	profile, email, err := p.composer.Compose(ctx, lead, probed)
	if err != nil {
		return row, err
	}
	row.Profile = profile
	row.TailoredEmail = email
	return row, nil
}

// politeSleep pauses a uniform random interval in [MinDelay, MaxDelay]
// between leads.
func (p *Pipeline) politeSleep(ctx context.Context) {
	d := p.opts.MinDelay
	if span := p.opts.MaxDelay - p.opts.MinDelay; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func joinErrors(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}
