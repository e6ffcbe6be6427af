package recap

import (
	"fmt"

	"github.com/aleister1102/recapurl/internal/common/urlhandler"
)

// Advisory messages, in the order AuditWarnings emits them.
const (
	WarnHostFormat    = "URL host is not %s"
	WarnNoArtifactRef = "Neither driveId nor fileUrl found; artifact resolution may fail"
	WarnNoCorrelation = "Missing iCalUid and threadId; meeting correlation may fail"
)

// AuditWarnings runs the host, resolvability and correlation checks in that
// order. Every check runs; each adds at most one message.
func AuditWarnings(parsed urlhandler.ParsedURL, ids Identifiers, expectedHost string) []string {
	warnings := []string{}

	if !urlhandler.SameHost(parsed.Host, expectedHost) {
		warnings = append(warnings, fmt.Sprintf(WarnHostFormat, expectedHost))
	}
	if !present(ids.DriveID) && !present(ids.FileURL) {
		warnings = append(warnings, WarnNoArtifactRef)
	}
	if !present(ids.ICalUID) && !present(ids.ThreadID) {
		warnings = append(warnings, WarnNoCorrelation)
	}

	return warnings
}
