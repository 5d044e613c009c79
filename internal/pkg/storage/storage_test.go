package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestEncodeDataURL(t *testing.T) {
	url, err := EncodeDataURL(bytes.NewReader(pngHeader), AttachmentOptions)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)

	url, err = EncodeDataURL(strings.NewReader("%PDF-1.4\n%stub"), AttachmentOptions)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:application/pdf;base64,"), url)

	_, err = EncodeDataURL(strings.NewReader("%PDF-1.4\n%stub"), PhotoOptions)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = EncodeDataURL(strings.NewReader("just text"), AttachmentOptions)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	small := UploadOptions{MaxSize: 4, AllowedTypes: []string{"image/"}}
	_, err = EncodeDataURL(bytes.NewReader(pngHeader), small)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestFormFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("attachment", "scan.png")
	require.NoError(t, err)
	_, _ = fw.Write(pngHeader)
	require.NoError(t, mw.WriteField("reason", "sick"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/leave", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	url, err := FormFile(req, "attachment", AttachmentOptions)
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/png;base64,")

	url, err = FormFile(req, "missing", AttachmentOptions)
	require.NoError(t, err)
	assert.Empty(t, url)
}
