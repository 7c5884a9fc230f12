package util

import "net/http"

// DetectContentType 嗅探文件头，无法识别时返回 application/octet-stream
func DetectContentType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
