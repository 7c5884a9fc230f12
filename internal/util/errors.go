package util

import "errors"

var (
	ErrEmptyResume      = errors.New("解析失败")
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
)
