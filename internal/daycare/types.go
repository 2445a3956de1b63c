package daycare

import "strings"

// Status is an attendance value. The same constants are shared by the
// overlay store, the filter engine, and every view; StatusAll is valid
// only as a filter and is never stored for a dog.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusAll     Status = "all"
)

// ParseStatus normalizes a status string. Unknown values map to StatusAll.
func ParseStatus(value string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPresent:
		return StatusPresent
	case StatusAbsent:
		return StatusAbsent
	default:
		return StatusAll
	}
}

// Toggled flips present and absent. The wildcard toggles to absent so a
// stray value can never round-trip back into the overlay unchanged.
func (s Status) Toggled() Status {
	if s == StatusPresent {
		return StatusAbsent
	}
	return StatusPresent
}

// Label returns the display form of the status.
func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	default:
		return "All"
	}
}

const (
	fallbackName     = "Unnamed"
	fallbackOwner    = "Unknown owner"
	fallbackImageURL = "https://placehold.co/320x240?text=dog"
)

// Dog mirrors one record of the roster payload.
type Dog struct {
	ChipNumber string `json:"chipNumber"`
	Name       string `json:"name"`
	Breed      string `json:"breed"`
	Sex        string `json:"sex"`
	Age        int    `json:"age"`
	Img        string `json:"img"`
	Present    bool   `json:"present"`
	Owner      Owner  `json:"owner"`
}

// Owner identifies who a dog belongs to. Phone is optional.
type Owner struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
}

// BaseStatus derives the attendance value carried by the remote snapshot.
func (d Dog) BaseStatus() Status {
	if d.Present {
		return StatusPresent
	}
	return StatusAbsent
}

// DisplayName returns the dog's name, or a fallback when the payload
// omitted it. A record with a missing name still renders.
func (d Dog) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return fallbackName
}

// OwnerName returns the owner's full name, or a fallback when the payload
// carried no owner information.
func (d Dog) OwnerName() string {
	full := strings.TrimSpace(strings.TrimSpace(d.Owner.Name) + " " + strings.TrimSpace(d.Owner.LastName))
	if full == "" {
		return fallbackOwner
	}
	return full
}

// ImageURL returns the dog's picture URL, or a placeholder when missing.
func (d Dog) ImageURL() string {
	if img := strings.TrimSpace(d.Img); img != "" {
		return img
	}
	return fallbackImageURL
}
