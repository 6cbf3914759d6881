package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"persona-gen-go/internal/model"
	"persona-gen-go/internal/repository"
)

func seedPersona(t *testing.T, repo repository.PersonaRepository) model.Persona {
	t.Helper()
	persona := model.Persona{
		ID:             "persona-1",
		UserID:         "test@example.com",
		CreatedAt:      time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		Goals:          []string{"Thought Leadership"},
		PersonaSummary: "### Test",
		RawQuestionaries: []model.QuestionAnswer{
			{QuestionID: "user_email", Question: "What is your email?", Answer: "test@example.com"},
			{QuestionID: "current_role", Question: "What is your current role?", Answer: "Software Engineer"},
			{QuestionID: "company_name", Question: "What is the name of your company?", Answer: "Test Company"},
		},
	}
	if err := repo.Put(context.Background(), persona); err != nil {
		t.Fatalf("seed persona: %v", err)
	}
	return persona
}

func TestCreatePostUnknownPersona(t *testing.T) {
	posts := repository.NewMemoryPostRepository()
	personas := repository.NewMemoryPersonaRepository()
	hook := &fakeWebhook{suggestions: []string{"x"}}
	svc := NewPostService(posts, personas, hook)

	_, err := svc.Create(context.Background(), CreatePostInput{
		Platform:            "LinkedIn",
		ContentType:         "Post",
		Tone:                "Professional",
		PersonaID:           "nope",
		NumberOfSuggestions: 2,
		Temperature:         0.75,
	})
	if !errors.Is(err, ErrPersonaNotFound) {
		t.Fatalf("expected ErrPersonaNotFound, got %v", err)
	}

	// 失败路径不允许产生任何写入
	stored, _ := posts.List(context.Background(), "", 10)
	if len(stored) != 0 {
		t.Fatalf("no post should be written, got %d", len(stored))
	}
	if hook.gotPostReq != nil {
		t.Fatal("webhook should not be called when persona is missing")
	}
}

func TestCreatePostWithPersona(t *testing.T) {
	posts := repository.NewMemoryPostRepository()
	personas := repository.NewMemoryPersonaRepository()
	seedPersona(t, personas)

	hook := &fakeWebhook{suggestions: []string{"first", "second"}}
	svc := NewPostService(posts, personas, hook)

	post, err := svc.Create(context.Background(), CreatePostInput{
		Platform:            "LinkedIn",
		ContentType:         "Post",
		Tone:                "Professional",
		PersonaID:           "persona-1",
		CoreMessage:         "Ship it",
		NumberOfSuggestions: 3,
		Temperature:         0.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 用户信息从画像原始问卷中按保留键提取
	req := hook.gotPostReq
	if req == nil {
		t.Fatal("webhook request not captured")
	}
	if req.UserInfo["email"] != "test@example.com" {
		t.Fatalf("email = %q", req.UserInfo["email"])
	}
	if req.UserInfo["position"] != "Software Engineer" {
		t.Fatalf("position = %q", req.UserInfo["position"])
	}
	if req.UserInfo["company"] != "Test Company" {
		t.Fatalf("company = %q", req.UserInfo["company"])
	}
	if req.Persona == nil || req.Persona.ID != "persona-1" {
		t.Fatal("persona must be attached to the webhook request")
	}
	if req.GenerationParameters.Variations != 3 || req.GenerationParameters.Temperature != 0.5 {
		t.Fatalf("generation parameters = %+v", req.GenerationParameters)
	}
	if req.RequestDetails["core_message"] != "Ship it" {
		t.Fatalf("core_message = %v", req.RequestDetails["core_message"])
	}
	if _, err := time.Parse(time.RFC3339, req.Context.CurrentDateTime); err != nil {
		t.Fatalf("context timestamp not ISO-8601: %v", err)
	}

	if post.ID == "" {
		t.Fatal("post id must not be empty")
	}
	if post.UserID != "test@example.com" {
		t.Fatalf("user_id = %q", post.UserID)
	}
	if len(post.Suggestions) != 2 {
		t.Fatalf("suggestions = %v", post.Suggestions)
	}

	stored, found, err := posts.Get(context.Background(), post.ID)
	if err != nil || !found {
		t.Fatalf("stored post not found: found=%v err=%v", found, err)
	}
	if stored.PersonaID != "persona-1" || stored.Platform != "LinkedIn" {
		t.Fatalf("stored post mismatch: %+v", stored)
	}
}

func TestCreatePostWithoutPersona(t *testing.T) {
	posts := repository.NewMemoryPostRepository()
	personas := repository.NewMemoryPersonaRepository()
	hook := &fakeWebhook{suggestions: []string{}}
	svc := NewPostService(posts, personas, hook)

	post, err := svc.Create(context.Background(), CreatePostInput{
		Platform:            "Twitter",
		ContentType:         "Thread",
		Tone:                "Casual",
		NumberOfSuggestions: 2,
		Temperature:         0.75,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.UserID != AnonymousUserID {
		t.Fatalf("user_id = %q, want anonymous fallback", post.UserID)
	}
	if hook.gotPostReq.Persona != nil {
		t.Fatal("persona must be absent from the webhook request")
	}
	if len(hook.gotPostReq.UserInfo) != 0 {
		t.Fatalf("user_info must be empty, got %v", hook.gotPostReq.UserInfo)
	}
	// core_message 为空时 request_details 不得包含该键
	if _, has := hook.gotPostReq.RequestDetails["core_message"]; has {
		t.Fatal("empty core_message must be omitted")
	}
}

func TestCreatePostWebhookFailureIsHard(t *testing.T) {
	posts := repository.NewMemoryPostRepository()
	personas := repository.NewMemoryPersonaRepository()
	hook := &fakeWebhook{postErr: errors.New("timeout")}
	svc := NewPostService(posts, personas, hook)

	_, err := svc.Create(context.Background(), CreatePostInput{
		Platform:            "Blog",
		ContentType:         "Article",
		Tone:                "Formal",
		NumberOfSuggestions: 1,
		Temperature:         0.3,
	})
	if err == nil {
		t.Fatal("webhook failure must fail post creation")
	}

	stored, _ := posts.List(context.Background(), "", 10)
	if len(stored) != 0 {
		t.Fatalf("no post should be written after webhook failure, got %d", len(stored))
	}
}

func TestCreatePostJobTitleFallback(t *testing.T) {
	posts := repository.NewMemoryPostRepository()
	personas := repository.NewMemoryPersonaRepository()
	// current_role 缺席时回退到 job_title
	persona := model.Persona{
		ID:        "persona-2",
		UserID:    "u",
		CreatedAt: time.Now().UTC(),
		RawQuestionaries: []model.QuestionAnswer{
			{QuestionID: "job_title", Question: "What is your job title?", Answer: "Staff Engineer"},
		},
	}
	if err := personas.Put(context.Background(), persona); err != nil {
		t.Fatalf("seed: %v", err)
	}

	hook := &fakeWebhook{suggestions: []string{"a"}}
	svc := NewPostService(posts, personas, hook)

	post, err := svc.Create(context.Background(), CreatePostInput{
		Platform:            "LinkedIn",
		ContentType:         "Post",
		Tone:                "Professional",
		PersonaID:           "persona-2",
		NumberOfSuggestions: 1,
		Temperature:         0.2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if hook.gotPostReq.UserInfo["position"] != "Staff Engineer" {
		t.Fatalf("position = %q", hook.gotPostReq.UserInfo["position"])
	}
	// email 缺席：user_info 省略该键，user_id 回退
	if _, has := hook.gotPostReq.UserInfo["email"]; has {
		t.Fatal("absent email must be omitted from user_info")
	}
	if post.UserID != AnonymousUserID {
		t.Fatalf("user_id = %q", post.UserID)
	}
}
