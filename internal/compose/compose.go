// Package compose builds the profile and outreach-email prompts from
// probed data and runs them through the completion service.
package compose

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Completer is the single completion operation the composer needs.
// Satisfied by *anthropic.Completer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sender is the fixed identity signed under every outreach email.
type Sender struct {
	Name    string
	Title   string
	Company string
	Phone   string
}

// Composer generates a company profile and a tailored outreach email for
// each lead. Generated text is accepted as-is; there is no structural
// validation of length or tone.
type Composer struct {
	completer Completer
	sender    Sender
	// personalOpener enables the third completion call for a dynamic
	// opening sentence.
	personalOpener bool
}

// New creates a Composer.
func New(completer Completer, sender Sender, personalOpener bool) *Composer {
	return &Composer{
		completer:      completer,
		sender:         sender,
		personalOpener: personalOpener,
	}
}

// Compose generates the profile and the outreach email for one lead. The
// probe result may carry an error with placeholder fields; composition
// still runs on whatever signals are present.
func (c *Composer) Compose(ctx context.Context, lead model.Lead, probed model.ProbeResult) (profile, email string, err error) {
	log := zap.L().With(zap.String("company", lead.Company))

	profile, err = c.completer.Complete(ctx, ProfilePrompt(lead.Company, probed.Brief, probed.KeywordList()))
	if err != nil {
		return "", "", eris.Wrap(err, "compose: profile")
	}
	log.Debug("compose: profile generated", zap.Int("chars", len(profile)))

	var opener string
	if c.personalOpener {
		opener, err = c.completer.Complete(ctx, OpenerPrompt(lead.Company, profile))
		if err != nil {
			return "", "", eris.Wrap(err, "compose: opener")
		}
	}

	email, err = c.completer.Complete(ctx, EmailPrompt(lead.Company, lead.ContactName, profile, opener, c.sender))
	if err != nil {
		return "", "", eris.Wrap(err, "compose: email")
	}
	log.Debug("compose: email generated", zap.Int("chars", len(email)))

	return profile, email, nil
}
