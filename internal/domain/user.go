package domain

import "time"

// User - username служит первичным ключом, PasswordHash никогда не
// сериализуется наружу
type User struct {
	Username     string
	PasswordHash []byte
	IsAdmin      bool
	TeamID       int
	CreatedAt    time.Time
}
