package model

import "sort"

// Task is a single to-do item.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NewTask creates an incomplete task.
func NewTask(id int64, text string) Task {
	return Task{ID: id, Text: text}
}

// OrderTasks moves completed tasks after incomplete ones, keeping the
// relative order within each group.
func OrderTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}

// FindTask returns the index of the task with the given id, or -1.
func FindTask(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Pending counts incomplete tasks.
func Pending(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
