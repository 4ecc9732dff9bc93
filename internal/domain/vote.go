package domain

import "time"

type Vote struct {
	ID        string
	UserID    string
	LeagueID  string
	TeamID    string
	Round     int
	CreatedAt time.Time
}
