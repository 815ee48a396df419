package entities

import "time"

type Client struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Document  string     `json:"document"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (c Client) GetID() string      { return c.ID }
func (c Client) GetOwnerID() string { return c.OwnerID }
func (c Client) IsDeleted() bool    { return c.DeletedAt != nil }
