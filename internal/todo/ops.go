// Package todo holds the task list rules: adding with deduplication, display
// ordering, positional edit and delete, and completion by identity.
//
// The functions in this file are pure. They never touch storage and never
// modify the slice they are given; Manager wraps them in the
// load, operate, save cycle.
package todo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/josephgoksu/todo/models"
)

// Add appends a new pending task built from description and deduplicates the
// result by description, keeping the first occurrence. When a task with the
// same trimmed description already exists the new one is dropped and the
// existing task keeps its ID and completion state.
func Add(tasks []models.Task, description string, now time.Time) ([]models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, emptyDescriptionError()
	}

	task := models.NewTask(description, now)
	if err := models.ValidateStruct(task); err != nil {
		return nil, &ValidationError{Field: "task", Reason: err.Error()}
	}

	next := make([]models.Task, 0, len(tasks)+1)
	next = append(next, tasks...)
	next = append(next, task)
	return UniqueByDescription(next), nil
}

// UniqueByDescription returns tasks with later duplicates of a description removed.
func UniqueByDescription(tasks []models.Task) []models.Task {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.Description]; ok {
			continue
		}
		seen[t.Description] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SortForDisplay returns a copy ordered pending first, then by description.
// The sort is stable, so tasks with equal keys keep their stored order.
func SortForDisplay(tasks []models.Task) []models.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b models.Task) int {
		if a.Completed != b.Completed {
			if !a.Completed {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Description, b.Description)
	})
	return sorted
}

// UpdateDescription replaces the description of the task at index.
// Uniqueness is not re-checked.
func UpdateDescription(tasks []models.Task, index int, description string) ([]models.Task, error) {
	if index < 0 || index >= len(tasks) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, emptyDescriptionError()
	}

	next := slices.Clone(tasks)
	next[index].Description = description
	return next, nil
}

// RemoveAt returns tasks without the element at index.
func RemoveAt(tasks []models.Task, index int) ([]models.Task, error) {
	if index < 0 || index >= len(tasks) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return slices.Delete(slices.Clone(tasks), index, index+1), nil
}

// Pending returns the tasks that are not completed, in stored order.
func Pending(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Pending() {
			out = append(out, t)
		}
	}
	return out
}

// MarkCompleted sets Completed on every task whose ID is in ids.
// IDs that match nothing are ignored.
func MarkCompleted(tasks []models.Task, ids []int64) []models.Task {
	selected := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	next := slices.Clone(tasks)
	for i := range next {
		if _, ok := selected[next[i].ID]; ok {
			next[i].Completed = true
		}
	}
	return next
}
