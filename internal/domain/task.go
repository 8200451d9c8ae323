package domain

type Task struct {
	ID          int
	ColumnID    int
	Title       string
	Description *string
	Order       int
	// Assignee - username исполнителя, nil если не назначен
	Assignee *string
}

type Subtask struct {
	ID     int
	TaskID int
	Title  string
	Order  int
	Done   bool
}
