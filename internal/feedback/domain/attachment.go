package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxAttachmentCount caps inline images per feedback record.
	MaxAttachmentCount = 5
	// MaxAttachmentBytes caps a single image payload at 10 MiB.
	MaxAttachmentBytes = 10 << 20
)

// Attachment is an inline-encoded image bundled with a record. The payload
// is embedded as a data URI so the record needs no external storage to be
// reconstructed.
type Attachment struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Data        string
	CreatedAt   time.Time
}

// File carries one uploaded image before encoding.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// EncodeAttachment validates a single upload and converts it into a
// self-contained inline attachment.
func EncodeAttachment(file File) (Attachment, error) {
	contentType := strings.TrimSpace(file.ContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return Attachment{}, fmt.Errorf("%w: %s", ErrWrongImageType, file.Name)
	}
	if len(file.Data) > MaxAttachmentBytes {
		return Attachment{}, fmt.Errorf("%w: %s", ErrImageTooLarge, file.Name)
	}

	encoded := base64.StdEncoding.EncodeToString(file.Data)
	return Attachment{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(file.Name),
		ContentType: contentType,
		Size:        int64(len(file.Data)),
		Data:        fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// EncodeBatch encodes uploads destined for a record that already holds
// existingCount attachments. Files past the record cap are dropped rather
// than rejected one by one; in that case the accepted prefix is returned
// together with ErrTooManyImages so the caller can warn the submitter.
func EncodeBatch(existingCount int, files []File) ([]Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}

	remaining := MaxAttachmentCount - existingCount
	if remaining < 0 {
		remaining = 0
	}

	truncated := false
	if len(files) > remaining {
		files = files[:remaining]
		truncated = true
	}

	accepted := make([]Attachment, 0, len(files))
	for _, file := range files {
		attachment, err := EncodeAttachment(file)
		if err != nil {
			return nil, err
		}
		accepted = append(accepted, attachment)
	}

	if truncated {
		return accepted, ErrTooManyImages
	}
	return accepted, nil
}

// Decode reverses the inline encoding and returns the original image bytes.
func (a Attachment) Decode() ([]byte, error) {
	payload := a.Data
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode attachment %s: %w", a.ID, err)
	}
	return decoded, nil
}
