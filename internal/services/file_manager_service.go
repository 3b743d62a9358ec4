package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pairchat/internal/enums"
	"pairchat/internal/interfaces"

	"github.com/google/uuid"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

// UploadMessageImage stores a base64 or data-URI image payload and returns
// its public URL. The object name is a fresh uuid.
func (fs *FileManagerService) UploadMessageImage(encoded string) (string, error) {
	raw, err := decodeImagePayload(encoded)
	if err != nil {
		return "", err
	}
	contentType := http.DetectContentType(raw)
	fileName := fmt.Sprintf("%s%s", uuid.NewString(), extensionFor(contentType))
	return fs.fileManager.UploadFile(
		fileName,
		bytes.NewReader(raw),
		int64(len(raw)),
		contentType,
		enums.FILE_BUCKET_CHAT_IMAGES,
	)
}

func (fs *FileManagerService) UploadUserAvatar(fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	return fs.fileManager.UploadFile(fileName, file, fileSize, contentType, enums.FILE_BUCKET_USER_AVATARS)
}

// decodeImagePayload accepts either a bare base64 string or a data URI like
// "data:image/png;base64,...".
func decodeImagePayload(encoded string) ([]byte, error) {
	if strings.HasPrefix(encoded, "data:") {
		_, data, found := strings.Cut(encoded, ",")
		if !found {
			return nil, fmt.Errorf("malformed data uri")
		}
		encoded = data
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
