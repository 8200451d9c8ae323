package domain

import "time"

type Team struct {
	ID         int
	InviteCode string
	CreatedAt  time.Time
}
