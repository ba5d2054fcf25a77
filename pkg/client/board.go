package client

import "context"

// Board is the in-memory view of one user's tasks, ordered newest
// first as fetched. Every mutation mirrors the server's returned
// record rather than patching locally, so local state never drifts
// from the server's timestamps. A failed request leaves the local
// collection untouched.
//
// Board is for a single session loop and is not safe for concurrent
// use. It does not dedupe or cancel in-flight requests, and changes
// made by other sessions are only picked up on the next Refresh.
type Board struct {
	client *Client
	tasks  []Task
}

func NewBoard(c *Client) *Board {
	return &Board{client: c}
}

// Refresh replaces the local collection with the server's full list.
func (b *Board) Refresh(ctx context.Context) error {
	tasks, err := b.client.ListTasks(ctx)
	if err != nil {
		return err
	}
	b.tasks = tasks
	return nil
}

// Tasks returns a copy of the local collection, newest first.
func (b *Board) Tasks() []Task {
	tasks := make([]Task, len(b.tasks))
	copy(tasks, b.tasks)
	return tasks
}

// Create submits a new task and prepends the server's record,
// keeping the newest-first order established at fetch time.
func (b *Board) Create(ctx context.Context, title, status string) (*Task, error) {
	task, err := b.client.CreateTask(ctx, title, status)
	if err != nil {
		return nil, err
	}
	b.tasks = append([]Task{*task}, b.tasks...)
	return task, nil
}

// Update submits a patch and replaces the matching local entry with
// the server's returned record.
func (b *Board) Update(ctx context.Context, id int64, patch TaskPatch) (*Task, error) {
	task, err := b.client.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i] = *task
			break
		}
	}
	return task, nil
}

// Delete removes the task on the server, then locally.
func (b *Board) Delete(ctx context.Context, id int64) error {
	err := b.client.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Advance moves a task to the next status in the display cycle.
// The cycle is a UI convenience; the server accepts any valid
// status regardless of the current one.
func (b *Board) Advance(ctx context.Context, id int64) (*Task, error) {
	var current string
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			current = b.tasks[i].Status
			break
		}
	}
	if current == "" {
		return nil, ErrNotFound
	}

	next := NextStatus(current)
	return b.Update(ctx, id, TaskPatch{Status: &next})
}

// Columns are the three disjoint per-status groups of the local
// collection, each preserving the collection's order.
type Columns struct {
	ToDo       []Task
	InProgress []Task
	Done       []Task
}

// Columns partitions the current collection by status. It is a pure
// filter recomputed on every call; it holds no state of its own.
func (b *Board) Columns() Columns {
	var cols Columns
	for _, task := range b.tasks {
		switch task.Status {
		case StatusToDo:
			cols.ToDo = append(cols.ToDo, task)
		case StatusInProgress:
			cols.InProgress = append(cols.InProgress, task)
		case StatusDone:
			cols.Done = append(cols.Done, task)
		}
	}
	return cols
}

// NextStatus cycles To Do → In Progress → Done → To Do.
func NextStatus(status string) string {
	switch status {
	case StatusToDo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	case StatusDone:
		return StatusToDo
	}
	return StatusToDo
}
