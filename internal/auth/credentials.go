package auth

// Credentials - пара заголовков Auth-User / Auth-Token, как её прислал клиент
type Credentials struct {
	Username string
	Token    string
}
