package repo

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Tasks is the repository for Task entities.
type Tasks struct {
	*Repository[model.Task]
}

// NewTasks creates the tasks repository for the given session.
func NewTasks(db *storage.DB, sess *session.Session, store *demo.Store) *Tasks {
	return &Tasks{newRepository(db, sess, store, storage.KindTasks,
		func(b *model.Bundle) *[]model.Task { return &b.Tasks },
		func(items []model.Task) demo.Patch { return demo.Patch{Tasks: &items} })}
}

// Create adds a task with a fresh id and current timestamps.
func (t *Tasks) Create(title, description string, priority model.Priority, due *time.Time) (model.Task, error) {
	return t.insert(model.NewTask(title, description, priority, due))
}

// TaskPatch carries the updatable task fields; nil fields are left as-is.
// ClearDueDate removes the due date regardless of DueDate.
type TaskPatch struct {
	Title        *string
	Description  *string
	Completed    *bool
	Priority     *model.Priority
	DueDate      *time.Time
	ClearDueDate bool
}

// Update merges the patch into the task with the given id and refreshes
// its updated_at timestamp.
func (t *Tasks) Update(id string, p TaskPatch) (model.Task, error) {
	return t.update(id, func(task model.Task) model.Task {
		if p.Title != nil {
			task.Title = *p.Title
		}
		if p.Description != nil {
			task.Description = *p.Description
		}
		if p.Completed != nil {
			task.Completed = *p.Completed
		}
		if p.Priority != nil && p.Priority.Valid() {
			task.Priority = *p.Priority
		}
		if p.ClearDueDate {
			task.DueDate = nil
		} else if p.DueDate != nil {
			task.DueDate = p.DueDate
		}
		task.UpdatedAt = time.Now()
		return task
	})
}

// ToggleCompletion flips the completed flag, a read-modify-write over Update.
func (t *Tasks) ToggleCompletion(id string) (model.Task, error) {
	task, err := t.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	next := !task.Completed
	return t.Update(id, TaskPatch{Completed: &next})
}
