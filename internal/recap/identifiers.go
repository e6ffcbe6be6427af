package recap

import "github.com/aleister1102/recapurl/internal/common/urlhandler"

// Query parameter names carried by Teams recap links.
const (
	ParamDriveID     = "driveId"
	ParamDriveItemID = "driveItemId"
	ParamFileURL     = "fileUrl"
	ParamSitePath    = "sitePath"
	ParamICalUID     = "iCalUid"
	ParamThreadID    = "threadId"
	ParamOrganizerID = "organizerId"
	ParamTenantID    = "tenantId"
	ParamCallID      = "callId"
	ParamMeetingType = "meetingType"
	ParamSubType     = "subType"
)

// Identifiers is the fixed set of values read from a recap URL.
// A nil field means the parameter was absent; an empty string means it was
// present with a blank value. Every field is always serialized.
type Identifiers struct {
	DriveID     *string `json:"driveId" yaml:"driveId"`
	DriveItemID *string `json:"driveItemId" yaml:"driveItemId"`
	FileURL     *string `json:"fileUrl" yaml:"fileUrl"`
	SitePath    *string `json:"sitePath" yaml:"sitePath"`
	ICalUID     *string `json:"iCalUid" yaml:"iCalUid"`
	ThreadID    *string `json:"threadId" yaml:"threadId"`
	OrganizerID *string `json:"organizerId" yaml:"organizerId"`
	TenantID    *string `json:"tenantId" yaml:"tenantId"`
	CallID      *string `json:"callId" yaml:"callId"`
	MeetingType *string `json:"meetingType" yaml:"meetingType"`
	SubType     *string `json:"subType" yaml:"subType"`
}

// ResolveIdentifiers extracts the query once and decodes the first value of
// each known parameter. Unknown parameters are ignored.
func ResolveIdentifiers(parsed urlhandler.ParsedURL) Identifiers {
	query := urlhandler.ExtractQuery(parsed.RawQuery)
	value := func(key string) *string {
		return urlhandler.NormalizeValue(query.First(key))
	}

	return Identifiers{
		DriveID:     value(ParamDriveID),
		DriveItemID: value(ParamDriveItemID),
		FileURL:     value(ParamFileURL),
		SitePath:    value(ParamSitePath),
		ICalUID:     value(ParamICalUID),
		ThreadID:    value(ParamThreadID),
		OrganizerID: value(ParamOrganizerID),
		TenantID:    value(ParamTenantID),
		CallID:      value(ParamCallID),
		MeetingType: value(ParamMeetingType),
		SubType:     value(ParamSubType),
	}
}

// present reports whether an identifier carries a usable value.
// Blank values count as missing.
func present(v *string) bool {
	return v != nil && *v != ""
}
