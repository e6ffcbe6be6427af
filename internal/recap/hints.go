package recap

import (
	"fmt"
	"strings"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
	"github.com/aleister1102/recapurl/internal/sharetoken"
)

// GraphHints holds candidate Microsoft Graph paths. A field is set only when
// the identifiers it needs are present; unset hints are omitted on output.
type GraphHints struct {
	DriveItem          string `json:"driveItem,omitempty" yaml:"driveItem,omitempty"`
	ShareDriveItem     string `json:"shareDriveItem,omitempty" yaml:"shareDriveItem,omitempty"`
	EncodedSharingURL  string `json:"encodedSharingUrl,omitempty" yaml:"encodedSharingUrl,omitempty"`
	EventByICalUID     string `json:"eventByICalUid,omitempty" yaml:"eventByICalUid,omitempty"`
	OnlineMeetingsRoot string `json:"onlineMeetingsRoot,omitempty" yaml:"onlineMeetingsRoot,omitempty"`
}

// IsEmpty reports whether no hint could be derived.
func (h GraphHints) IsEmpty() bool {
	return h == GraphHints{}
}

// DeriveHints applies every hint rule whose inputs are present. The rules are
// independent; a failing sharing-token encode aborts the whole derivation.
func DeriveHints(ids Identifiers, apiVersion string) (GraphHints, error) {
	var hints GraphHints
	root := "/" + strings.Trim(apiVersion, "/")

	if present(ids.DriveID) && present(ids.DriveItemID) {
		hints.DriveItem = fmt.Sprintf("%s/drives/%s/items/%s", root, *ids.DriveID, *ids.DriveItemID)
	}

	if present(ids.FileURL) {
		token, err := sharetoken.Encode(*ids.FileURL)
		if err != nil {
			return GraphHints{}, errorwrapper.WrapError(err, "failed to encode fileUrl")
		}
		hints.EncodedSharingURL = token
		hints.ShareDriveItem = fmt.Sprintf("%s/shares/%s/driveItem", root, token)
	}

	if present(ids.OrganizerID) && present(ids.ICalUID) {
		hints.EventByICalUID = fmt.Sprintf("%s/users/%s/events?$filter=iCalUId eq '%s'",
			root, *ids.OrganizerID, quoteODataString(*ids.ICalUID))
	}

	if present(ids.OrganizerID) {
		hints.OnlineMeetingsRoot = fmt.Sprintf("%s/users/%s/onlineMeetings", root, *ids.OrganizerID)
	}

	return hints, nil
}

// quoteODataString escapes a value for use inside a single-quoted OData
// string literal.
func quoteODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
