package auth

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// Hasher - примитив хеширования паролей с солью на каждый хеш.
// Вход предварительно сворачивается в SHA-256: bcrypt принимает максимум
// 72 байта, а токенный прообраз username||password_hash длиннее. Прехеш
// применяется единообразно к паролям и токенам, чтобы проверка оставалась
// симметричной.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(input []byte) ([]byte, error) {
	sum := sha256.Sum256(input)
	return bcrypt.GenerateFromPassword(sum[:], h.cost)
}

// Check - сравнение за константное время, без ветвления по байтам
func (h *Hasher) Check(input, hash []byte) bool {
	sum := sha256.Sum256(input)
	return bcrypt.CompareHashAndPassword(hash, sum[:]) == nil
}
