package model

// Location is where an appointment takes place. Free-form strings are
// accepted alongside the named set; the intake form offers an escape hatch.
type Location string

const (
	LocationZoom   Location = "Zoom"
	LocationOffice Location = "OFC"
	LocationPhone  Location = "PH"
	LocationHouse  Location = "HOUSE"
)

// Confirmation is the contact status for an appointment. Free-form strings
// are accepted alongside the named set.
type Confirmation string

const (
	ConfirmationYes     Confirmation = "Y"
	ConfirmationNo      Confirmation = "N"
	ConfirmationLM      Confirmation = "LM | Sent Email"
	ConfirmationLeftMsg Confirmation = "Left Msg"
)

// Appointment is a scheduled meeting slot on a staff member's day.
// Time stays free-form text and is parsed on demand for sorting/display.
type Appointment struct {
	ID              string `json:"id"`
	Owner           string `json:"owner"`
	Time            string `json:"time"`
	ClientName      string `json:"client_name"`
	Description     string `json:"description"`
	LastAcctSummary string `json:"last_acct_summary,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Location        string `json:"location"`
	ZoomLink        string `json:"zoom_link,omitempty"` // only set when Location is Zoom
	ZoomLinkSent    bool   `json:"zoom_link_sent,omitempty"`
	Confirmation    string `json:"confirmation,omitempty"`
	DPPsValue       string `json:"dpps_value,omitempty"`
	IFsValue        string `json:"ifs_value,omitempty"`
	Notes           string `json:"notes,omitempty"`
	RMDCheck        bool   `json:"rmd_check"`
}
