package csvenc

import (
	"strings"

	"contactdesk-cli/internal/model"
)

// Header is the fixed column line consumed by the downstream email pipeline.
// Column names and order must remain stable; timestamp is deliberately excluded.
const Header = "employer_name,employer_role,email_id,job_link"

// Encode renders the collection as CSV text.
//
// The header line is always first, even for an empty collection. Rows are joined
// with "\n" and no trailing newline is appended: the joined rows are the complete
// body. We do not use encoding/csv here; its writer terminates every row with a
// newline and also quotes fields containing '\r', both of which would change the
// bytes the downstream consumer was built against.
func Encode(records []model.Record) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, Header)
	for _, r := range records {
		fields := []string{
			escapeField(r.EmployerName),
			escapeField(r.EmployerRole),
			escapeField(r.EmailID),
			escapeField(r.JobLink),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// escapeField quotes a field iff it contains a double-quote, a comma, or a
// newline. Internal double-quotes are doubled. Anything else passes through
// byte-identical.
func escapeField(s string) string {
	if !strings.ContainsAny(s, "\",\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
