package service

import (
	"ai_interview_backend/internal/model"
	"ai_interview_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionStore 会话持久化能力
type SessionStore interface {
	Upsert(session *model.Session) error
	ListAll() ([]model.Session, error)
}

const (
	sessionListCacheKey = "interview:sessions"
	sessionListCacheTTL = 30 * time.Second
)

// SessionService 会话创建与列表，列表走Redis短缓存（未配置Redis时直读库）
type SessionService struct {
	Repo  SessionStore
	Redis *redis.Client
}

func NewSessionService(repo SessionStore, rdb *redis.Client) *SessionService {
	return &SessionService{Repo: repo, Redis: rdb}
}

// SessionView 列表项，createdAt 为毫秒时间戳
type SessionView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ResumeText string `json:"resumeText"`
	CreatedAt  int64  `json:"createdAt"`
}

// Upsert title 总是覆盖，空 resumeText 不覆盖已有值
func (s *SessionService) Upsert(ctx context.Context, id, title, resumeText string) error {
	err := s.Repo.Upsert(&model.Session{
		ID:         id,
		Title:      title,
		ResumeText: resumeText,
	})
	if err != nil {
		return err
	}

	if s.Redis != nil {
		if err := s.Redis.Del(ctx, sessionListCacheKey).Err(); err != nil {
			logger.Log.Warn("failed to invalidate session list cache", zap.Error(err))
		}
	}
	return nil
}

// List 全部会话，新建在前
func (s *SessionService) List(ctx context.Context) ([]SessionView, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, sessionListCacheKey).Result(); err == nil {
			var views []SessionView
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views, nil
			}
		}
	}

	sessions, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}

	views := make([]SessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, SessionView{
			ID:         sess.ID,
			Title:      sess.Title,
			ResumeText: sess.ResumeText,
			CreatedAt:  sess.CreatedAt.UnixMilli(),
		})
	}

	if s.Redis != nil {
		if data, err := json.Marshal(views); err == nil {
			s.Redis.Set(ctx, sessionListCacheKey, data, sessionListCacheTTL)
		}
	}
	return views, nil
}
