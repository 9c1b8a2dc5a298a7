package storage

import "mime/multipart"

// ObjectStorage 对象存储接口，由本地磁盘、S3、GCS 三种后端实现
type ObjectStorage interface {
	// UploadFile 上传 multipart 文件，返回可公开访问的URL
	UploadFile(file *multipart.FileHeader, path string) (string, error)
	// UploadBytes 上传已解码的二进制数据（如 data URL 头像），返回可公开访问的URL
	UploadBytes(data []byte, contentType, path string) (string, error)
}
