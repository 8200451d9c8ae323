package auth

// Токены не хранятся в базе: токен - это bcrypt от username||password_hash
// со свежей солью. Смена пароля инвалидирует все выданные токены, потому
// что прообраз перестаёт совпадать.

func tokenPreimage(username string, passwordHash []byte) []byte {
	preimage := make([]byte, 0, len(username)+len(passwordHash))
	preimage = append(preimage, []byte(username)...)
	preimage = append(preimage, passwordHash...)
	return preimage
}

// DeriveToken выдаёт новый токен; вызывается на register и login
func (h *Hasher) DeriveToken(username string, passwordHash []byte) (string, error) {
	token, err := h.Hash(tokenPreimage(username, passwordHash))
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (h *Hasher) VerifyToken(username string, passwordHash []byte, token string) bool {
	return h.Check(tokenPreimage(username, passwordHash), []byte(token))
}
