package util

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateUniqueFilename 生成唯一的文件名
func GenerateUniqueFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return uuid.NewString() + ext
}

// DecodeDataURL 解析 data URL，返回解码后的字节和内容类型
// 格式：data:image/png;base64,xxxx
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", errors.New("无效的 data URL")
	}

	parts := strings.SplitN(dataURL[len("data:"):], ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("无效的 data URL")
	}

	meta := parts[0]
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == meta {
		return nil, "", errors.New("仅支持 base64 编码的 data URL")
	}
	if contentType == "" {
		contentType = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}
