package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"persona-gen-go/internal/model"
)

func TestMemoryPersonaListOrderAndLimit(t *testing.T) {
	repo := NewMemoryPersonaRepository()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Put(ctx, model.Persona{
			ID:        fmt.Sprintf("p-%d", i),
			UserID:    "u-1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	personas, err := repo.List(ctx, "", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(personas) != 3 {
		t.Fatalf("limit not applied, got %d records", len(personas))
	}
	// created_at 严格倒序
	for i := 1; i < len(personas); i++ {
		if personas[i].CreatedAt.After(personas[i-1].CreatedAt) {
			t.Fatalf("records not in descending order: %v then %v", personas[i-1].CreatedAt, personas[i].CreatedAt)
		}
	}
	if personas[0].ID != "p-4" {
		t.Fatalf("newest first expected p-4, got %s", personas[0].ID)
	}
}

func TestMemoryPersonaListFiltersByUser(t *testing.T) {
	repo := NewMemoryPersonaRepository()
	ctx := context.Background()

	_ = repo.Put(ctx, model.Persona{ID: "a", UserID: "alice", CreatedAt: time.Now()})
	_ = repo.Put(ctx, model.Persona{ID: "b", UserID: "bob", CreatedAt: time.Now()})

	personas, err := repo.List(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(personas) != 1 || personas[0].ID != "a" {
		t.Fatalf("filter failed: %+v", personas)
	}
}

func TestMemoryPersonaGetNotFound(t *testing.T) {
	repo := NewMemoryPersonaRepository()
	_, found, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected found=false for unknown id")
	}
}

func TestMemoryPostListOrderAndLimit(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := repo.Put(ctx, model.Post{
			ID:        fmt.Sprintf("post-%d", i),
			UserID:    "u-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	posts, err := repo.List(ctx, "u-1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("limit not applied, got %d", len(posts))
	}
	if posts[0].ID != "post-3" || posts[1].ID != "post-2" {
		t.Fatalf("order wrong: %s, %s", posts[0].ID, posts[1].ID)
	}
}
