package entities

import "time"

// Equipment is a client asset a work order can be bound to.
type Equipment struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

func (e Equipment) GetID() string      { return e.ID }
func (e Equipment) GetOwnerID() string { return e.OwnerID }
func (e Equipment) IsDeleted() bool    { return e.DeletedAt != nil }
