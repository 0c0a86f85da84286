package domain

import (
	"time"

	"github.com/google/uuid"
)

type Clan struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Region    *string   `db:"region" json:"region"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
} // @name Clan

// NewClan stamps a fresh id and creation time. Timestamps are kept in UTC at
// microsecond precision, which every supported store preserves exactly.
func NewClan(name string, region *string) Clan {
	return Clan{
		ID:        uuid.New(),
		Name:      name,
		Region:    NormalizeRegion(region),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// NormalizeRegion treats an empty region as absent.
func NormalizeRegion(region *string) *string {
	if region == nil || *region == "" {
		return nil
	}
	r := *region
	return &r
}

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type ClanFilter struct {
	Region *string
	Sort   string
}
