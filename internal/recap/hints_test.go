package recap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/recapurl/internal/common/urlhandler"
	"github.com/aleister1102/recapurl/internal/sharetoken"
)

func TestDeriveHints(t *testing.T) {
	tests := []struct {
		name     string
		ids      Identifiers
		expected GraphHints
	}{
		{
			name:     "nothing present",
			ids:      Identifiers{},
			expected: GraphHints{},
		},
		{
			name:     "drive id alone is not enough",
			ids:      Identifiers{DriveID: strPtr("d")},
			expected: GraphHints{},
		},
		{
			name:     "drive item",
			ids:      Identifiers{DriveID: strPtr("d"), DriveItemID: strPtr("i")},
			expected: GraphHints{DriveItem: "/v1.0/drives/d/items/i"},
		},
		{
			name:     "organizer only",
			ids:      Identifiers{OrganizerID: strPtr("o")},
			expected: GraphHints{OnlineMeetingsRoot: "/v1.0/users/o/onlineMeetings"},
		},
		{
			name: "ical uid without organizer",
			ids:  Identifiers{ICalUID: strPtr("c")},
		},
		{
			name: "quote in ical uid is escaped",
			ids:  Identifiers{OrganizerID: strPtr("o"), ICalUID: strPtr("it's")},
			expected: GraphHints{
				EventByICalUID:     "/v1.0/users/o/events?$filter=iCalUId eq 'it''s'",
				OnlineMeetingsRoot: "/v1.0/users/o/onlineMeetings",
			},
		},
		{
			name:     "blank values are ignored",
			ids:      Identifiers{DriveID: strPtr(""), DriveItemID: strPtr("i"), FileURL: strPtr(""), OrganizerID: strPtr("")},
			expected: GraphHints{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints, err := DeriveHints(tt.ids, DefaultAPIVersion)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hints)
		})
	}
}

func TestDeriveHints_FileURL(t *testing.T) {
	hints, err := DeriveHints(Identifiers{FileURL: strPtr("https://contoso.sharepoint.com/file.docx")}, "/v1.0/")
	require.NoError(t, err)

	token, err := sharetoken.Encode("https://contoso.sharepoint.com/file.docx")
	require.NoError(t, err)
	assert.Equal(t, token, hints.EncodedSharingURL)
	assert.Equal(t, "/v1.0/shares/"+token+"/driveItem", hints.ShareDriveItem)
}

func TestDeriveHints_AllRulesFire(t *testing.T) {
	ids := Identifiers{
		DriveID:     strPtr("d"),
		DriveItemID: strPtr("i"),
		FileURL:     strPtr("https://x"),
		OrganizerID: strPtr("o"),
		ICalUID:     strPtr("c"),
	}
	hints, err := DeriveHints(ids, DefaultAPIVersion)
	require.NoError(t, err)

	assert.NotEmpty(t, hints.DriveItem)
	assert.NotEmpty(t, hints.ShareDriveItem)
	assert.NotEmpty(t, hints.EncodedSharingURL)
	assert.NotEmpty(t, hints.EventByICalUID)
	assert.NotEmpty(t, hints.OnlineMeetingsRoot)
}

func TestDeriveHints_EncodingFailure(t *testing.T) {
	hints, err := DeriveHints(Identifiers{FileURL: strPtr("\xff\xfe"), OrganizerID: strPtr("o")}, DefaultAPIVersion)
	assert.ErrorIs(t, err, sharetoken.ErrEncodingPrecondition)
	assert.True(t, hints.IsEmpty(), "no partial hints on failure")
}

func TestAuditWarnings(t *testing.T) {
	teams := urlhandler.ParsedURL{Scheme: "https", Host: "teams.microsoft.com"}

	tests := []struct {
		name     string
		parsed   urlhandler.ParsedURL
		ids      Identifiers
		expected []string
	}{
		{
			name:     "all satisfied",
			parsed:   teams,
			ids:      Identifiers{FileURL: strPtr("f"), ThreadID: strPtr("t")},
			expected: []string{},
		},
		{
			name:     "missing artifact reference",
			parsed:   teams,
			ids:      Identifiers{ICalUID: strPtr("c")},
			expected: []string{WarnNoArtifactRef},
		},
		{
			name:     "missing correlation",
			parsed:   teams,
			ids:      Identifiers{DriveID: strPtr("d")},
			expected: []string{WarnNoCorrelation},
		},
		{
			name:     "order is host, artifact, correlation",
			parsed:   urlhandler.ParsedURL{Host: "teams.microsoft.com.evil.example"},
			ids:      Identifiers{},
			expected: []string{"URL host is not teams.microsoft.com", WarnNoArtifactRef, WarnNoCorrelation},
		},
		{
			name:     "port makes the host differ",
			parsed:   urlhandler.ParsedURL{Host: "teams.microsoft.com:443"},
			ids:      Identifiers{DriveID: strPtr("d"), ThreadID: strPtr("t")},
			expected: []string{"URL host is not teams.microsoft.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AuditWarnings(tt.parsed, tt.ids, DefaultExpectedHost))
		})
	}
}

func TestResolveIdentifiers_IgnoresUnknownParams(t *testing.T) {
	ids := ResolveIdentifiers(urlhandler.ParsedURL{RawQuery: "foo=bar&callId=c1&meetingType=Recurring&subType=recap&tenantId=t&sitePath=%2Fsites%2Fteam"})

	assert.Equal(t, Identifiers{
		CallID:      strPtr("c1"),
		MeetingType: strPtr("Recurring"),
		SubType:     strPtr("recap"),
		TenantID:    strPtr("t"),
		SitePath:    strPtr("/sites/team"),
	}, ids)
}
