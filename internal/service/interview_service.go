package service

import (
	"ai_interview_backend/internal/model"
	"ai_interview_backend/internal/util"
	"ai_interview_backend/pkg/logger"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// QuestionStore 题目持久化能力
type QuestionStore interface {
	Create(question *model.Question) error
	CreateBatch(questions []model.Question) error
	Delete(id string) error
	ListBySession(sessionID string) ([]model.Question, error)
}

// AttemptStore 回答持久化能力
type AttemptStore interface {
	Create(attempt *model.Attempt) error
	ListByQuestion(questionID string) ([]model.Attempt, error)
}

const (
	defaultQuestionCount = 3
	// 提示词里简历的最大长度（按字符数截断）
	resumeLimitGenerate = 2000
	resumeLimitAnalyze  = 1500
)

// InterviewService 出题与回答分析的编排：外部网关 + 持久化
type InterviewService struct {
	Questions QuestionStore
	Attempts  AttemptStore
	AI        CompletionGateway
	Speech    TranscriptionGateway
	Storage   *StorageService
}

func NewInterviewService(questions QuestionStore, attempts AttemptStore, ai CompletionGateway, speech TranscriptionGateway, storage *StorageService) *InterviewService {
	return &InterviewService{
		Questions: questions,
		Attempts:  attempts,
		AI:        ai,
		Speech:    speech,
		Storage:   storage,
	}
}

type GenerateRequest struct {
	SessionID         string   `json:"session_id" binding:"required"`
	JobTitle          string   `json:"job_title" binding:"required"`
	Count             int      `json:"count"`
	ExistingQuestions []string `json:"existing_questions"`
	ResumeText        string   `json:"resume_text"`
}

type QuestionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// GenerateQuestions 调大模型出题并落库。网关失败时返回空列表（不算请求失败），
// 落库失败则向上返回错误
func (s *InterviewService) GenerateQuestions(ctx context.Context, req *GenerateRequest) ([]QuestionView, error) {
	count := req.Count
	if count <= 0 {
		count = defaultQuestionCount
	}

	resumePart := ""
	if req.ResumeText != "" {
		resumePart = fmt.Sprintf("\n【简历摘要】:\n%s", truncateRunes(req.ResumeText, resumeLimitGenerate))
	}

	existing, _ := json.Marshal(req.ExistingQuestions)
	systemPrompt := fmt.Sprintf(
		"资深面试官。根据岗位%s生成 %d 个面试题。\n要求：涵盖硬技能、软技能、行业洞察。避免重复：%s\nJSON格式：{ \"questions\": [ { \"text\": \"...\", \"type\": \"硬技能\" } ] }",
		resumePart, count, string(existing),
	)

	result, err := s.AI.CompleteJSON(ctx, systemPrompt, "岗位："+req.JobTitle)
	if err != nil {
		logger.Log.Warn("question generation failed", zap.String("session", req.SessionID), zap.Error(err))
		return []QuestionView{}, nil
	}

	rawList, ok := result["questions"].([]interface{})
	if !ok {
		logger.Log.Warn("question generation returned unexpected shape", zap.String("session", req.SessionID))
		return []QuestionView{}, nil
	}

	questions := make([]model.Question, 0, len(rawList))
	views := make([]QuestionView, 0, len(rawList))
	for _, raw := range rawList {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		text := stringField(item, "text")
		if text == "" {
			continue
		}
		qType := stringField(item, "type")
		if qType == "" {
			qType = util.DefaultQuestionType
		}

		id := model.GenerateUUID()
		questions = append(questions, model.Question{
			ID:        id,
			SessionID: req.SessionID,
			Text:      text,
			Type:      qType,
		})
		views = append(views, QuestionView{ID: id, Text: text, Type: qType})
	}

	if err := s.Questions.CreateBatch(questions); err != nil {
		return nil, err
	}
	return views, nil
}

// CreateQuestion 手动录入一道题，返回生成的题目id
func (s *InterviewService) CreateQuestion(sessionID, text, qType string) (string, error) {
	id := model.GenerateUUID()
	err := s.Questions.Create(&model.Question{
		ID:        id,
		SessionID: sessionID,
		Text:      text,
		Type:      qType,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *InterviewService) DeleteQuestion(id string) error {
	return s.Questions.Delete(id)
}

func (s *InterviewService) ListQuestions(sessionID string) ([]QuestionView, error) {
	questions, err := s.Questions.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{ID: q.ID, Text: q.Text, Type: q.Type})
	}
	return views, nil
}

type AnalyzeInput struct {
	QuestionID   string
	AttemptID    string
	QuestionText string
	JobTitle     string
	ResumeText   string
	Filename     string
	Audio        []byte
}

type AnalyzeResult struct {
	Transcription string                 `json:"transcription"`
	Analysis      map[string]interface{} `json:"analysis"`
	AudioURL      string                 `json:"audio_url"`
}

// AnalyzeAnswer 存录音 → 转写 → 大模型点评 → 落库。
// 点评失败时回答仍然落库（无评分），应答里带 error 字段
func (s *InterviewService) AnalyzeAnswer(ctx context.Context, in *AnalyzeInput) (*AnalyzeResult, error) {
	ext := filepath.Ext(in.Filename)
	if ext == "" {
		ext = ".wav"
	}
	filename := in.AttemptID + ext

	audioURL, err := s.Storage.Upload(ctx, filename, bytes.NewReader(in.Audio), int64(len(in.Audio)), util.DetectContentType(in.Audio))
	if err != nil {
		return nil, err
	}

	transcription := s.Speech.Transcribe(ctx, in.Audio)

	durationString := ""
	if path, ok := s.Storage.LocalFilePath(filename); ok {
		if seconds, err := util.ProbeAudioDuration(path); err == nil {
			durationString = util.FormatDuration(seconds)
		}
	}

	resumePart := ""
	if in.ResumeText != "" {
		resumePart = fmt.Sprintf("【简历核对】：%s\n", truncateRunes(in.ResumeText, resumeLimitAnalyze))
	}
	systemPrompt := fmt.Sprintf(
		"严厉面试官。打分(0-100)和点评。\n%sJSON格式：{ \"score\": 0, \"feedback\": \"\", \"pros\": [], \"cons\": [], \"betterAnswer\": \"\" }",
		resumePart,
	)
	userPrompt := fmt.Sprintf("岗位:%s\n问题:%s\n回答:%s", in.JobTitle, in.QuestionText, transcription)

	attempt := &model.Attempt{
		ID:             in.AttemptID,
		QuestionID:     in.QuestionID,
		AudioURL:       audioURL,
		DurationString: durationString,
		Transcription:  transcription,
	}

	analysis, aiErr := s.AI.CompleteJSON(ctx, systemPrompt, userPrompt)
	if aiErr != nil {
		logger.Log.Warn("answer analysis failed", zap.String("attempt", in.AttemptID), zap.Error(aiErr))
		analysis = map[string]interface{}{"error": aiErr.Error()}
	} else {
		score := intField(analysis, "score")
		attempt.Score = &score
		attempt.Feedback = stringField(analysis, "feedback")
		attempt.Pros = listField(analysis, "pros")
		attempt.Cons = listField(analysis, "cons")
		attempt.BetterAnswer = stringField(analysis, "betterAnswer")
	}

	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}

	return &AnalyzeResult{
		Transcription: transcription,
		Analysis:      analysis,
		AudioURL:      audioURL,
	}, nil
}

// AnalysisView 有评分时的点评对象
type AnalysisView struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	BetterAnswer string   `json:"betterAnswer"`
}

type AttemptView struct {
	ID             string        `json:"id"`
	URL            string        `json:"url"`
	Timestamp      int64         `json:"timestamp"`
	DurationString string        `json:"durationString"`
	Transcription  string        `json:"transcription"`
	Analysis       *AnalysisView `json:"analysis"`
}

// ListAttempts 无评分的回答 analysis 为 null
func (s *InterviewService) ListAttempts(questionID string) ([]AttemptView, error) {
	attempts, err := s.Attempts.ListByQuestion(questionID)
	if err != nil {
		return nil, err
	}

	views := make([]AttemptView, 0, len(attempts))
	for _, a := range attempts {
		duration := a.DurationString
		if duration == "" {
			duration = util.DefaultDurationLabel
		}

		var analysis *AnalysisView
		if a.Score != nil {
			analysis = &AnalysisView{
				Score:        *a.Score,
				Feedback:     a.Feedback,
				Pros:         decodeStringList(a.Pros),
				Cons:         decodeStringList(a.Cons),
				BetterAnswer: a.BetterAnswer,
			}
		}

		views = append(views, AttemptView{
			ID:             a.ID,
			URL:            a.AudioURL,
			Timestamp:      a.CreatedAt.UnixMilli(),
			DurationString: duration,
			Transcription:  a.Transcription,
			Analysis:       analysis,
		})
	}
	return views, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intField(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}

// listField 字段缺失或类型不符时回退为空数组，字符串之外的元素丢弃
func listField(m map[string]interface{}, key string) json.RawMessage {
	items := []string{}
	if raw, ok := m[key].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
	}
	data, _ := json.Marshal(items)
	return data
}

// decodeStringList 历史数据 pros/cons 可能为 NULL
func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
