package models

import "time"

type Profile struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Timezone   string     `json:"timezone"`
	FIDEID     string     `json:"fide_id"`
	FIDERating int        `json:"fide_rating"`
	Onboarded  bool       `json:"onboarded"`
	CreatedAt  time.Time  `json:"created_at"`
	LastSyncAt *time.Time `json:"last_sync_at"`
}

// Location resolves the profile's IANA timezone, falling back to UTC when
// the name is empty or unknown.
func (p Profile) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
