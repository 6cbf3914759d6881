package repository

import (
	"context"
	"sort"
	"sync"

	"persona-gen-go/internal/model"
)

// 内存实现供测试与本地开发使用，语义与 Mongo 实现保持一致：
// List 按 created_at 倒序、同样受 limit 截断。

type memoryPersonaRepository struct {
	mu       sync.RWMutex
	personas map[string]model.Persona
}

// NewMemoryPersonaRepository 创建一个内存 PersonaRepository。
func NewMemoryPersonaRepository() PersonaRepository {
	return &memoryPersonaRepository{personas: make(map[string]model.Persona)}
}

func (r *memoryPersonaRepository) Put(_ context.Context, persona model.Persona) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.personas[persona.ID] = persona
	return nil
}

func (r *memoryPersonaRepository) Get(_ context.Context, id string) (model.Persona, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	persona, ok := r.personas[id]
	return persona, ok, nil
}

func (r *memoryPersonaRepository) List(_ context.Context, userID string, limit int) ([]model.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	personas := []model.Persona{}
	for _, p := range r.personas {
		if userID != "" && p.UserID != userID {
			continue
		}
		personas = append(personas, p)
	}
	sort.Slice(personas, func(i, j int) bool {
		return personas[i].CreatedAt.After(personas[j].CreatedAt)
	})
	if limit > 0 && len(personas) > limit {
		personas = personas[:limit]
	}
	return personas, nil
}

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]model.Post
}

// NewMemoryPostRepository 创建一个内存 PostRepository。
func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{posts: make(map[string]model.Post)}
}

func (r *memoryPostRepository) Put(_ context.Context, post model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = post
	return nil
}

func (r *memoryPostRepository) Get(_ context.Context, id string) (model.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	return post, ok, nil
}

func (r *memoryPostRepository) List(_ context.Context, userID string, limit int) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []model.Post{}
	for _, p := range r.posts {
		if userID != "" && p.UserID != userID {
			continue
		}
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}
