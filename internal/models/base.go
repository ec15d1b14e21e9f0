package models

import "gorm.io/datatypes"

// Coordinates is a venue's position, stored as JSONB through datatypes.JSONType.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SocialMedia holds a team's social links, stored as JSONB through datatypes.JSONType.
type SocialMedia struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

// Positions normalizes a position list for a JSONB array column. A nil list
// becomes an empty array so the column never holds JSON null.
func Positions(list []string) datatypes.JSONSlice[string] {
	if list == nil {
		list = []string{}
	}
	return datatypes.NewJSONSlice(list)
}
