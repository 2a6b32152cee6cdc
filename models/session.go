package models

import "time"

// Session is the server-side row behind the anonymous browser cookie. The
// key is an opaque string; the only state it carries besides identity is
// the admin flag set by the admin login.
type Session struct {
	Key       string `gorm:"primaryKey;size:64"`
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
