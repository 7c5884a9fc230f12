package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	// DefaultQuestionType 模型未给出类别时的兜底标签
	DefaultQuestionType = "通用"
	// DefaultDurationLabel 历史数据无时长时列表返回的占位标签
	DefaultDurationLabel = "录音"
)
