package createbharat

import "embed"

// EmailFS carries the transactional email templates.
//
//go:embed templates/emails
var EmailFS embed.FS
