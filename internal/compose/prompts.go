package compose

import (
	"fmt"
	"strings"
)

// Fixed product and incentive copy embedded in every outreach email.
const (
	productBlock = "• CRISUP Potato Sticks – freeze-dried then vacuum-fried (≈50% less oil), " +
		"zero trans fat, six gourmet flavours, #1 global potato-stick.\n" +
		"• KOZED Peelable Gummies – 28% real juice, Halal-certified, zero fat, interactive peelable fruit shapes."

	incentiveBlock = "MOQ tiers 10 / 70 (free shipping) / 140 cases; free merchandising strip per case; " +
		"one free branded display for every $500 ordered."

	callToAction = "Would a two-flavour tasting kit be helpful, or would you prefer a brief " +
		"10-minute call to discuss next steps?"

	fallbackContact = "Snack Category Manager"
)

// ProfilePrompt builds the prompt for the 5–10 line company profile.
func ProfilePrompt(company, brief, keywords string) string {
	if keywords == "" {
		keywords = "n/a"
	}
	return fmt.Sprintf(
		"Write a concise 5–10 line profile of %s. "+
			"Homepage description: %s "+
			"Keywords: %s. "+
			"Highlight product categories, customer base, or geographic reach. "+
			"Plain text only.",
		company, brief, keywords,
	)
}

// OpenerPrompt builds the prompt for the optional one-sentence personalized
// opener spliced ahead of the fixed introduction.
func OpenerPrompt(company, profile string) string {
	return fmt.Sprintf(
		"Write one natural opening sentence for a first-touch sales email to %s. "+
			"Base it on this profile and do not mention that you read their website:\n%s\n"+
			"Return only the sentence.",
		company, profile,
	)
}

// EmailPrompt builds the prompt for the final outreach email: an assembled
// draft the model polishes while keeping product details and the signature
// intact.
func EmailPrompt(company, contactName, profile, opener string, s Sender) string {
	contact := strings.TrimSpace(contactName)
	if contact == "" {
		contact = fallbackContact
	}
	greeting := fmt.Sprintf("Hello %s,", contact)

	intro := fmt.Sprintf(
		"My name is %s, %s at %s, a U.S.–based importer of award-winning Asian snack brands.",
		s.Name, s.Title, s.Company,
	)
	if opener != "" {
		intro = opener + "\n" + intro
	}

	hook := profileHook(company, profile)

	signature := fmt.Sprintf("Best regards,\n%s\n%s · %s\n%s",
		s.Name, s.Title, s.Company, s.Phone)

	draft := strings.Join([]string{
		greeting,
		"",
		intro,
		hook,
		"",
		productBlock,
		"",
		incentiveBlock,
		"",
		callToAction,
		"",
		signature,
	}, "\n")

	return "Polish the following draft into a formal, approachable first-touch sales email. " +
		"Keep the greeting, product details, incentives, and signature exactly as given. " +
		"Plain text only.\n\n" + draft
}

// profileHook turns the first two profile lines into a two-detail hook
// sentence tying the products to the lead's focus.
func profileHook(company, profile string) string {
	var lines []string
	for _, ln := range strings.Split(profile, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	var hook1, hook2 string
	if len(lines) > 0 {
		hook1 = strings.ToLower(lines[0])
	}
	if len(lines) > 1 {
		hook2 = strings.ToLower(lines[1])
	}

	return fmt.Sprintf(
		"We understand that %s specialises in %s and %s. Our snacks align directly with that focus.",
		company, hook1, hook2,
	)
}
