package service

import (
	"ai_interview_backend/internal/config"
	"ai_interview_backend/pkg/logger"
	"ai_interview_backend/pkg/monitoring"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TranscriptionGateway 语音转写能力。识别失败不报错，返回占位文本，
// 占位文本会照常进入点评与落库流程
type TranscriptionGateway interface {
	Transcribe(ctx context.Context, audio []byte) string
}

const (
	baiduTokenURL = "https://aip.baidubce.com/oauth/2.0/token"
	baiduASRURL   = "https://vop.baidu.com/server_api"

	// PlaceholderUnconfigured 未配置百度凭证时的固定文案，前端直接展示
	PlaceholderUnconfigured = "（语音服务未配置）"

	asrFormat = "wav"
	asrRate   = 16000
	// 1537 普通话输入法模型
	asrDevPid = 1537
)

type SpeechService struct {
	cfg     config.SpeechConfig
	enabled bool
	client  *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewSpeechService(cfg *config.Config) *SpeechService {
	s := &SpeechService{
		cfg:     cfg.Speech,
		enabled: cfg.SpeechConfigured(),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	if s.cfg.TokenURL == "" {
		s.cfg.TokenURL = baiduTokenURL
	}
	if s.cfg.ASRURL == "" {
		s.cfg.ASRURL = baiduASRURL
	}
	return s
}

// Transcribe 整段音频一次性送百度短语音识别，返回第一条候选
func (s *SpeechService) Transcribe(ctx context.Context, audio []byte) string {
	if !s.enabled {
		return PlaceholderUnconfigured
	}

	text, err := s.recognize(ctx, audio)
	monitoring.ObserveUpstream("transcription", err)
	if err != nil {
		logger.Log.Warn("speech recognition failed", zap.Error(err))
		return fmt.Sprintf("（识别失败: %v）", err)
	}
	return text
}

func (s *SpeechService) recognize(ctx context.Context, audio []byte) (string, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return "", err
	}

	reqBody := map[string]interface{}{
		"format":  asrFormat,
		"rate":    asrRate,
		"channel": 1,
		"cuid":    s.cfg.AppID,
		"dev_pid": asrDevPid,
		"token":   token,
		"speech":  base64.StdEncoding.EncodeToString(audio),
		"len":     len(audio),
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.ASRURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result struct {
		ErrNo  int      `json:"err_no"`
		ErrMsg string   `json:"err_msg"`
		Result []string `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid asr response: %v", err)
	}
	if result.ErrNo != 0 {
		return "", fmt.Errorf("%s", result.ErrMsg)
	}
	if len(result.Result) == 0 {
		return "", fmt.Errorf("empty recognition result")
	}
	return result.Result[0], nil
}

// accessToken 带缓存的OAuth令牌，过期前5分钟刷新
func (s *SpeechService) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	params := url.Values{}
	params.Set("grant_type", "client_credentials")
	params.Set("client_id", s.cfg.APIKey)
	params.Set("client_secret", s.cfg.SecretKey)

	req, err := http.NewRequestWithContext(ctx, "GET", s.cfg.TokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
		Error       string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid token response: %v", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token request failed: %s", result.Error)
	}

	s.token = result.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - 5*time.Minute)
	return s.token, nil
}
