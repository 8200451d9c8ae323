package repository

import "errors"

// ErrNotFound возвращают все репозитории, когда запись отсутствует;
// сервисы переводят её в доменную ошибку нужного поля
var ErrNotFound = errors.New("not found")
