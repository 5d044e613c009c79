package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the allowed size")
	ErrUnsupportedType = errors.New("file type is not allowed")
)

type UploadOptions struct {
	MaxSize int64
	// AllowedTypes holds exact mime types or prefixes ending in "/".
	AllowedTypes []string
}

// AttachmentOptions accepts images and PDFs up to 5MB.
var AttachmentOptions = UploadOptions{
	MaxSize:      5 << 20,
	AllowedTypes: []string{"image/", "application/pdf"},
}

// PhotoOptions accepts images up to 2MB.
var PhotoOptions = UploadOptions{
	MaxSize:      2 << 20,
	AllowedTypes: []string{"image/"},
}

func (o UploadOptions) allows(contentType string) bool {
	for _, allowed := range o.AllowedTypes {
		if strings.HasSuffix(allowed, "/") && strings.HasPrefix(contentType, allowed) {
			return true
		}
		if contentType == allowed {
			return true
		}
	}
	return false
}

// EncodeDataURL reads file and returns it as a base64 data URL. The content
// type is sniffed from the bytes, not taken from the client.
func EncodeDataURL(file io.Reader, opts UploadOptions) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, opts.MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > opts.MaxSize {
		return "", ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	contentType := strings.SplitN(mime.String(), ";", 2)[0]
	if !opts.allows(contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FormFile encodes the multipart field if one was sent. A missing file is not
// an error and yields an empty string.
func FormFile(r *http.Request, field string, opts UploadOptions) (string, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read form file %s: %w", field, err)
	}
	defer file.Close()

	return EncodeDataURL(file, opts)
}
