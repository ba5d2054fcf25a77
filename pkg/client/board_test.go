package client

import (
	"context"
	"errors"
	"testing"
)

func newTestBoard(t *testing.T) (*Board, *fakeServer) {
	t.Helper()
	c, fake := newTestClient(t)
	return NewBoard(c), fake
}

func boardTitles(b *Board) []string {
	tasks := b.Tasks()
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	return titles
}

func TestBoardCreatePrepends(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	if err := board.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	for _, title := range []string{"first", "second", "third"} {
		if _, err := board.Create(ctx, title, ""); err != nil {
			t.Fatalf("Create(%q): %v", title, err)
		}
	}

	titles := boardTitles(board)
	want := []string{"third", "second", "first"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
}

func TestBoardUpdateMirrorsServerRecord(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	task, err := board.Create(ctx, "work", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := StatusInProgress
	updated, err := board.Update(ctx, task.ID, TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	local := board.Tasks()[0]
	// The local entry is the server's record, not a local patch:
	// server-side timestamps come along.
	if local.Status != StatusInProgress {
		t.Errorf("local status = %q", local.Status)
	}
	if !local.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Errorf("local updated_at = %v, server %v", local.UpdatedAt, updated.UpdatedAt)
	}
	if !local.UpdatedAt.After(task.UpdatedAt) {
		t.Error("updated_at not refreshed by server")
	}
}

func TestBoardDeleteRemovesEntry(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	keep, _ := board.Create(ctx, "keep", "")
	doomed, _ := board.Create(ctx, "doomed", "")

	if err := board.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tasks := board.Tasks()
	if len(tasks) != 1 || tasks[0].ID != keep.ID {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestBoardFailureLeavesLocalStateUnchanged(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	if _, err := board.Create(ctx, "only", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := board.Tasks()

	if _, err := board.Create(ctx, "   ", ""); err == nil {
		t.Fatal("blank create succeeded")
	}
	if err := board.Delete(ctx, 999); err == nil {
		t.Fatal("delete of missing id succeeded")
	}

	after := board.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("local state changed: %+v -> %+v", before, after)
	}
}

func TestBoardColumnsPartition(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	board.Create(ctx, "a", StatusToDo)
	board.Create(ctx, "b", StatusInProgress)
	board.Create(ctx, "c", StatusDone)
	board.Create(ctx, "d", StatusToDo)

	cols := board.Columns()
	if len(cols.ToDo) != 2 || len(cols.InProgress) != 1 || len(cols.Done) != 1 {
		t.Fatalf("columns = %d/%d/%d", len(cols.ToDo), len(cols.InProgress), len(cols.Done))
	}
	// Order within a column preserves the collection's order.
	if cols.ToDo[0].Title != "d" || cols.ToDo[1].Title != "a" {
		t.Errorf("to-do column = %q, %q", cols.ToDo[0].Title, cols.ToDo[1].Title)
	}

	total := len(cols.ToDo) + len(cols.InProgress) + len(cols.Done)
	if total != len(board.Tasks()) {
		t.Errorf("columns hold %d tasks, collection %d", total, len(board.Tasks()))
	}
}

func TestBoardAdvanceCycles(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	task, err := board.Create(ctx, "cycle", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, want := range []string{StatusInProgress, StatusDone, StatusToDo} {
		updated, err := board.Advance(ctx, task.ID)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if updated.Status != want {
			t.Fatalf("status = %q, want %q", updated.Status, want)
		}
	}
}

func TestBoardAdvanceUnknownTask(t *testing.T) {
	board, _ := newTestBoard(t)

	_, err := board.Advance(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestNextStatus(t *testing.T) {
	cases := map[string]string{
		StatusToDo:       StatusInProgress,
		StatusInProgress: StatusDone,
		StatusDone:       StatusToDo,
		"garbage":        StatusToDo,
	}
	for current, want := range cases {
		if got := NextStatus(current); got != want {
			t.Errorf("NextStatus(%q) = %q, want %q", current, got, want)
		}
	}
}
