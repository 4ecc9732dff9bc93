package domain

import "time"

type League struct {
	ID         string
	Name       string
	InviteCode string
	Members    []LeagueMember
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LeagueMember - участник лиги вместе с данными пользователя
type LeagueMember struct {
	UserID      string
	Email       string
	DisplayName string
	IsAdmin     bool
	JoinedAt    time.Time
}

type LeagueListItem struct {
	ID   string
	Name string
}

type Membership struct {
	UserID   string
	LeagueID string
	IsAdmin  bool
	JoinedAt time.Time
}

func (l *League) Member(userID string) (LeagueMember, bool) {
	for _, m := range l.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return LeagueMember{}, false
}
