// Package seed содержит упакованные данные для наполнения первой доски
// свежезарегистрированного админа.
package seed

import (
	_ "embed"
	"encoding/json"
)

//go:embed tutorial_tasks.json
var tutorialTasksJSON []byte

type TutorialTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
}

func TutorialTasks() ([]TutorialTask, error) {
	var tasks []TutorialTask
	if err := json.Unmarshal(tutorialTasksJSON, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
