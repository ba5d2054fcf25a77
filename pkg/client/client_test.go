package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeServer is a minimal in-memory rendition of the task API, just
// enough to exercise the client's contract handling.
type fakeServer struct {
	nextID int64
	tasks  []Task
}

func newFakeServer() *fakeServer {
	return &fakeServer{nextID: 1}
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "test-token"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(f.tasks)
		case http.MethodPost:
			var req struct {
				Title  string `json:"title"`
				Status string `json:"status"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)

			title := strings.TrimSpace(req.Title)
			if title == "" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "task title is required"})
				return
			}
			status := req.Status
			if status == "" {
				status = StatusToDo
			}

			now := time.Now().UTC().Truncate(time.Second)
			task := Task{
				ID:        f.nextID,
				Title:     title,
				Status:    status,
				CreatedAt: now,
				UpdatedAt: now,
			}
			f.nextID++
			f.tasks = append([]Task{task}, f.tasks...)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(task)
		}
	})
	mux.HandleFunc("/api/v1/tasks/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		idx := -1
		for i := range f.tasks {
			if f.tasks[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "task not found"})
			return
		}

		switch r.Method {
		case http.MethodPut:
			var patch TaskPatch
			_ = json.NewDecoder(r.Body).Decode(&patch)
			task := f.tasks[idx]
			if patch.Title != nil {
				task.Title = strings.TrimSpace(*patch.Title)
			}
			if patch.Status != nil {
				task.Status = *patch.Status
			}
			task.UpdatedAt = task.UpdatedAt.Add(time.Second)
			f.tasks[idx] = task

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(task)
		case http.MethodDelete:
			f.tasks = append(f.tasks[:idx], f.tasks[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeServer) {
	t.Helper()
	fake := newFakeServer()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)
	return New(server.URL, "test-token"), fake
}

func TestLoginCapturesAccessToken(t *testing.T) {
	fake := newFakeServer()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	c := New(server.URL, "")
	if err := c.Login(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.Token() != "test-token" {
		t.Errorf("token = %q", c.Token())
	}
}

func TestCreateAndListTasks(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	task, err := c.CreateTask(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == 0 || task.Status != StatusToDo {
		t.Errorf("task = %+v", task)
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	status := StatusDone
	_, err := c.UpdateTask(context.Background(), 999, TaskPatch{Status: &status})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCreateTaskValidationError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.CreateTask(context.Background(), "   ", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	// The server's reason is preserved in the message.
	if !strings.Contains(err.Error(), "title is required") {
		t.Errorf("error message = %q", err)
	}
}

func TestDeleteTask(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	task, err := c.CreateTask(ctx, "doomed", "")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := c.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(fake.tasks) != 0 {
		t.Errorf("server still holds %d tasks", len(fake.tasks))
	}

	err = c.DeleteTask(ctx, task.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
