package services

import (
	"strings"
	"time"
)

// defaultCompanyName is substituted for $companyName when the sender has
// no display name.
const defaultCompanyName = "Your Company"

// RenderContext carries the per-recipient values substituted into a
// message template.
type RenderContext struct {
	RecipientEmail string
	SenderName     string
	Date           time.Time
}

// RenderTemplate substitutes the fixed placeholder tokens in text:
//
//	$email       the recipient address
//	$userName    the local part of the recipient address
//	$companyName the sender display name
//	$date        the current short date
//
// Substitution is a single pass: replacement values are never re-scanned
// for further tokens, and unknown tokens are left verbatim.
func RenderTemplate(text string, ctx RenderContext) string {
	company := ctx.SenderName
	if company == "" {
		company = defaultCompanyName
	}

	r := strings.NewReplacer(
		"$email", ctx.RecipientEmail,
		"$userName", localPart(ctx.RecipientEmail),
		"$companyName", company,
		"$date", ctx.Date.Format("1/2/2006"),
	)
	return r.Replace(text)
}

// localPart returns the part of an address before the @. Addresses with
// no @ are returned whole.
func localPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
