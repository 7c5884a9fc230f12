package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeService 简历文件正文提取，仅支持 docx/pdf，
// 任何解析失败都返回空串，由上层判定为"解析失败"
type ResumeService struct{}

func NewResumeService() *ResumeService {
	return &ResumeService{}
}

func (s *ResumeService) ExtractText(data []byte, filename string) string {
	lower := strings.ToLower(filename)
	var text string
	switch {
	case strings.HasSuffix(lower, ".docx"):
		text = extractDocxText(data)
	case strings.HasSuffix(lower, ".pdf"):
		text = extractPDFText(data)
	default:
		return ""
	}
	return strings.TrimSpace(text)
}

// extractDocxText docx 即 zip 包，正文在 word/document.xml，
// 段落(w:p)内所有文本节点(w:t)拼接，段落之间换行
func extractDocxText(data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var docFile *zip.File
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return ""
	}

	rc, err := docFile.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String()
}

// extractPDFText 逐页取纯文本，坏页跳过；库对损坏输入可能panic，统一吞掉
func extractPDFText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String()
}
