package service

import (
	"ai_interview_backend/internal/config"
	"ai_interview_backend/internal/model"
	"ai_interview_backend/internal/repository"
	"ai_interview_backend/internal/util"
	"ai_interview_backend/pkg/database"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubCompletion 记录提示词并返回固定应答
type stubCompletion struct {
	result     map[string]interface{}
	err        error
	lastSystem string
	lastUser   string
}

func (s *stubCompletion) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (map[string]interface{}, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	return s.result, s.err
}

type stubTranscription struct {
	text string
}

func (s *stubTranscription) Transcribe(ctx context.Context, audio []byte) string {
	return s.text
}

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 内存库必须固定在单个连接上，否则每个连接各自一份空库
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestInterviewService(t *testing.T, db *gorm.DB, ai CompletionGateway, transcript string) *InterviewService {
	t.Helper()
	storage := NewStorageService(&config.Config{
		Storage: config.StorageConfig{
			Type:          util.StorageLocal,
			LocalPath:     t.TempDir(),
			PublicBaseURL: "http://localhost:8000",
		},
	})
	return NewInterviewService(
		repository.NewQuestionRepository(db),
		repository.NewAttemptRepository(db),
		ai,
		&stubTranscription{text: transcript},
		storage,
	)
}

func createTestSession(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	if err := repository.NewSessionRepository(db).Upsert(&model.Session{ID: id, Title: "Go后端工程师"}); err != nil {
		t.Fatalf("create session: %v", err)
	}
}

func TestGenerateQuestions(t *testing.T) {
	db := newServiceTestDB(t)
	createTestSession(t, db, "s1")

	ai := &stubCompletion{result: map[string]interface{}{
		"questions": []interface{}{
			map[string]interface{}{"text": "讲讲Go的GMP调度模型", "type": "硬技能"},
			map[string]interface{}{"text": "说一次和同事意见不合的经历"},
			map[string]interface{}{"type": "硬技能"}, // 缺text，丢弃
		},
	}}
	svc := newTestInterviewService(t, db, ai, "")

	views, err := svc.GenerateQuestions(context.Background(), &GenerateRequest{
		SessionID:         "s1",
		JobTitle:          "Go后端工程师",
		Count:             2,
		ExistingQuestions: []string{"自我介绍一下"},
		ResumeText:        "五年Go开发经验",
	})
	if err != nil {
		t.Fatalf("GenerateQuestions() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	if views[0].ID == "" || views[0].ID == views[1].ID {
		t.Errorf("question ids not unique: %q %q", views[0].ID, views[1].ID)
	}
	// 缺失type回退默认类别
	if views[1].Type != util.DefaultQuestionType {
		t.Errorf("views[1].Type = %q, want %q", views[1].Type, util.DefaultQuestionType)
	}

	// 提示词必须携带已有题目与简历摘要
	if !strings.Contains(ai.lastSystem, "自我介绍一下") {
		t.Errorf("system prompt missing existing questions: %q", ai.lastSystem)
	}
	if !strings.Contains(ai.lastSystem, "五年Go开发经验") {
		t.Errorf("system prompt missing resume: %q", ai.lastSystem)
	}
	if ai.lastUser != "岗位：Go后端工程师" {
		t.Errorf("user prompt = %q", ai.lastUser)
	}

	persisted, err := svc.ListQuestions("s1")
	if err != nil {
		t.Fatalf("ListQuestions() error = %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("persisted questions = %d, want 2", len(persisted))
	}
}

// TestGenerateQuestions_GatewayError 网关失败降级为空列表，不算请求失败
func TestGenerateQuestions_GatewayError(t *testing.T) {
	db := newServiceTestDB(t)
	createTestSession(t, db, "s1")

	svc := newTestInterviewService(t, db, &stubCompletion{err: errors.New("upstream timeout")}, "")
	views, err := svc.GenerateQuestions(context.Background(), &GenerateRequest{SessionID: "s1", JobTitle: "测试工程师"})
	if err != nil {
		t.Fatalf("GenerateQuestions() error = %v, want nil", err)
	}
	if len(views) != 0 {
		t.Errorf("len(views) = %d, want 0", len(views))
	}
}

func TestGenerateQuestions_UnexpectedShape(t *testing.T) {
	db := newServiceTestDB(t)
	createTestSession(t, db, "s1")

	svc := newTestInterviewService(t, db, &stubCompletion{result: map[string]interface{}{"answer": "好的"}}, "")
	views, err := svc.GenerateQuestions(context.Background(), &GenerateRequest{SessionID: "s1", JobTitle: "测试工程师"})
	if err != nil {
		t.Fatalf("GenerateQuestions() error = %v, want nil", err)
	}
	if len(views) != 0 {
		t.Errorf("len(views) = %d, want 0", len(views))
	}
}

// TestCreateQuestion_SessionMissing 外键约束拦截挂到不存在会话上的题目
func TestCreateQuestion_SessionMissing(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestInterviewService(t, db, &stubCompletion{}, "")

	if _, err := svc.CreateQuestion("no-such-session", "随便一道题", "通用"); err == nil {
		t.Error("CreateQuestion() error = nil, want foreign key violation")
	}
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestInterviewService(t, db, &stubCompletion{}, "")

	if err := svc.DeleteQuestion("no-such-question"); err != nil {
		t.Errorf("DeleteQuestion() error = %v, want nil", err)
	}
}

func TestAnalyzeAnswer(t *testing.T) {
	db := newServiceTestDB(t)
	createTestSession(t, db, "s1")
	svc := newTestInterviewService(t, db, &stubCompletion{result: map[string]interface{}{
		"score":        float64(80),
		"feedback":     "回答结构清晰，但缺少量化结果",
		"pros":         []interface{}{"表达流畅"},
		"cons":         []interface{}{"没有数据支撑"},
		"betterAnswer": "可以补充项目的QPS与耗时对比",
	}}, "我主导过一次服务拆分")
	qid, err := svc.CreateQuestion("s1", "讲讲你做过的架构改造", "硬技能")
	if err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}

	result, err := svc.AnalyzeAnswer(context.Background(), &AnalyzeInput{
		QuestionID:   qid,
		AttemptID:    "a1",
		QuestionText: "讲讲你做过的架构改造",
		JobTitle:     "Go后端工程师",
		Filename:     "recording.wav",
		Audio:        []byte("fake-wav-bytes"),
	})
	if err != nil {
		t.Fatalf("AnalyzeAnswer() error = %v", err)
	}
	if result.Transcription != "我主导过一次服务拆分" {
		t.Errorf("Transcription = %q", result.Transcription)
	}
	if result.AudioURL != "http://localhost:8000/recordings/a1.wav" {
		t.Errorf("AudioURL = %q", result.AudioURL)
	}
	if result.Analysis["score"] != float64(80) {
		t.Errorf("Analysis[score] = %v, want 80", result.Analysis["score"])
	}

	// 录音确实写到了本地磁盘
	path, ok := svc.Storage.LocalFilePath("a1.wav")
	if !ok {
		t.Fatal("LocalFilePath() ok = false")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("recording file missing: %v", err)
	}
	if filepath.Base(path) != "a1.wav" {
		t.Errorf("recording filename = %q", filepath.Base(path))
	}

	views, err := svc.ListAttempts(qid)
	if err != nil {
		t.Fatalf("ListAttempts() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	v := views[0]
	if v.Analysis == nil {
		t.Fatal("Analysis = nil, want populated")
	}
	if v.Analysis.Score != 80 {
		t.Errorf("Score = %d, want 80", v.Analysis.Score)
	}
	if len(v.Analysis.Pros) != 1 || v.Analysis.Pros[0] != "表达流畅" {
		t.Errorf("Pros = %v", v.Analysis.Pros)
	}
	if v.Timestamp == 0 {
		t.Error("Timestamp = 0, want epoch millis")
	}
}

// TestAnalyzeAnswer_AIFailure 点评失败：回答仍落库但无评分，analysis带error
func TestAnalyzeAnswer_AIFailure(t *testing.T) {
	db := newServiceTestDB(t)
	createTestSession(t, db, "s1")
	svc := newTestInterviewService(t, db, &stubCompletion{err: errors.New("model overloaded")}, "一段回答")
	qid, err := svc.CreateQuestion("s1", "自我介绍", "通用")
	if err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}

	result, err := svc.AnalyzeAnswer(context.Background(), &AnalyzeInput{
		QuestionID:   qid,
		AttemptID:    "a2",
		QuestionText: "自我介绍",
		JobTitle:     "Go后端工程师",
		Filename:     "voice", // 无扩展名，回落.wav
		Audio:        []byte("fake"),
	})
	if err != nil {
		t.Fatalf("AnalyzeAnswer() error = %v", err)
	}
	if result.Analysis["error"] != "model overloaded" {
		t.Errorf("Analysis[error] = %v", result.Analysis["error"])
	}
	if !strings.HasSuffix(result.AudioURL, "/recordings/a2.wav") {
		t.Errorf("AudioURL = %q, want .wav fallback", result.AudioURL)
	}

	views, err := svc.ListAttempts(qid)
	if err != nil {
		t.Fatalf("ListAttempts() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	if views[0].Analysis != nil {
		t.Errorf("Analysis = %+v, want nil for unscored attempt", views[0].Analysis)
	}
	// 探测不到音频时长时回退默认文案
	if views[0].DurationString != util.DefaultDurationLabel {
		t.Errorf("DurationString = %q, want %q", views[0].DurationString, util.DefaultDurationLabel)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("一二三四五", 3); got != "一二三" {
		t.Errorf("truncateRunes() = %q, want 一二三", got)
	}
	if got := truncateRunes("short", 10); got != "short" {
		t.Errorf("truncateRunes() = %q, want short", got)
	}
}

func TestListField(t *testing.T) {
	m := map[string]interface{}{
		"pros":  []interface{}{"好", 1, "棒"},
		"wrong": "not a list",
	}
	if got := string(listField(m, "pros")); got != `["好","棒"]` {
		t.Errorf("listField(pros) = %s", got)
	}
	if got := string(listField(m, "wrong")); got != `[]` {
		t.Errorf("listField(wrong) = %s", got)
	}
	if got := string(listField(m, "missing")); got != `[]` {
		t.Errorf("listField(missing) = %s", got)
	}
}
