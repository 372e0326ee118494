package storage

import (
	"sync"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/validate"
)

// TaskList owns the to-do items under model.KeyTasks.
type TaskList struct {
	mu  sync.Mutex
	kv  KeyValueStore
	ids *model.IDSource
	log *logging.ContextLogger
}

// NewTaskList creates a task list. A nil id source uses the wall clock.
func NewTaskList(kv KeyValueStore, ids *model.IDSource) *TaskList {
	if ids == nil {
		ids = model.NewIDSource(nil)
	}
	return &TaskList{
		kv:  kv,
		ids: ids,
		log: logging.ForStore("tasks"),
	}
}

// Load returns the tasks with incomplete ones first.
func (l *TaskList) Load() ([]model.Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Add appends a new incomplete task.
func (l *TaskList) Add(text string) (model.Task, error) {
	text = validate.SanitizeLine(text)
	if err := validate.TaskText(text); err != nil {
		l.log.Info("task rejected", logging.KeyReason, err.Error())
		return model.Task{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tasks, err := l.read()
	if err != nil {
		return model.Task{}, err
	}
	task := model.NewTask(l.ids.Next(model.MaxTaskID(tasks)), text)
	tasks = append(tasks, task)
	if err := l.write(tasks); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Toggle flips completion of the task with the given id.
func (l *TaskList) Toggle(id int64) ([]model.Task, error) {
	return l.mutate(func(tasks []model.Task) []model.Task {
		if idx := model.FindTask(tasks, id); idx >= 0 {
			tasks[idx].Completed = !tasks[idx].Completed
		}
		return tasks
	})
}

// Delete removes the task with the given id. Unknown ids are ignored.
func (l *TaskList) Delete(id int64) ([]model.Task, error) {
	return l.mutate(func(tasks []model.Task) []model.Task {
		if idx := model.FindTask(tasks, id); idx >= 0 {
			tasks = append(tasks[:idx], tasks[idx+1:]...)
		}
		return tasks
	})
}

// ClearCompleted removes every completed task.
func (l *TaskList) ClearCompleted() ([]model.Task, error) {
	return l.mutate(func(tasks []model.Task) []model.Task {
		kept := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

func (l *TaskList) mutate(fn func([]model.Task) []model.Task) ([]model.Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tasks, err := l.read()
	if err != nil {
		return nil, err
	}
	tasks = fn(tasks)
	if err := l.write(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// read loads and orders tasks. Missing or malformed storage is an empty list.
func (l *TaskList) read() ([]model.Task, error) {
	raw, ok, err := l.kv.Get(model.KeyTasks)
	if err != nil {
		return nil, errors.StorageError("load tasks", err)
	}
	if !ok {
		return []model.Task{}, nil
	}
	tasks, err := model.DecodeTasks(raw)
	if err != nil {
		l.log.Warn("discarding malformed tasks", logging.KeyError, err.Error())
		return []model.Task{}, nil
	}
	model.OrderTasks(tasks)
	return tasks, nil
}

// write orders tasks in place and persists them.
func (l *TaskList) write(tasks []model.Task) error {
	model.OrderTasks(tasks)
	if tasks == nil {
		tasks = []model.Task{}
	}
	raw, err := model.Encode(tasks)
	if err != nil {
		return errors.StorageError("encode tasks", err)
	}
	if err := l.kv.Set(model.KeyTasks, raw); err != nil {
		return errors.StorageError("save tasks", err)
	}
	return nil
}
