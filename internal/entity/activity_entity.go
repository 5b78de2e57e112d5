package entity

import (
	"time"
)

// AdminActivity is one row of the owner-facing activity log. Details is a
// free-form payload (JSONB in the relational backend).
type AdminActivity struct {
	Id        string
	Timestamp time.Time
	Action    string
	Email     *string
	UserId    *string
	Method    string
	Path      string
	Ip        string
	Details   map[string]interface{}
}
