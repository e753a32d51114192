package model

// OffDayForm is the raw input of one off-day submission as collected from
// the form surface. Optional fields are pointers because an absent field
// is distinct from an empty one: OffDate present selects the single-day
// variant, absent selects the start/end range.
type OffDayForm struct {
	OffType  string
	OffDate  *string
	StartOff *string
	EndOff   *string
	Note     *string
	User     string // stringified employee id from the hidden form field
}

// OffDayPayload is the normalized creation payload handed to the data
// platform. It is built once per submission and discarded afterwards.
type OffDayPayload struct {
	Employee  int
	Single    bool
	StartDate *string
	EndDate   *string
	Notes     *string
	Type      string
}
