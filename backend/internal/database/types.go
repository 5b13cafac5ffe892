package database

import "time"

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

// Media mirrors the platform media index: data is the absolute file path
type Media struct {
	Id        int64     `db:"id,omitempty"`
	Data      string    `db:"data"`
	MimeType  string    `db:"mime_type"`
	AddedTime time.Time `db:"added_timestamp"`
}
