package models

// ChildProfile describes the child whose wardrobe is tracked.
type ChildProfile struct {
	Name string `json:"name"`

	// BirthDate is a calendar date, normally "2006-01-02".
	BirthDate string `json:"birthDate"`
}

// Location is a point the weather provider can be queried for.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Settings holds household preferences.
type Settings struct {
	Location Location `json:"location"`

	// GraceMonths is how far past a size's upper bound the child may be
	// before the item is flagged as outgrown.
	GraceMonths int `json:"graceMonths"`
}
