package domain

import "time"

type Board struct {
	ID        int
	TeamID    int
	Name      string
	CreatedAt time.Time
}

// Column - одна из четырёх позиционных корзин доски. Колонки создаются
// атомарно вместе с доской и по отдельности не создаются и не удаляются.
type Column struct {
	ID      int
	BoardID int
	Order   int
}

// ColumnCount - у каждой доски ровно столько колонок, order 0..3
const ColumnCount = 4
