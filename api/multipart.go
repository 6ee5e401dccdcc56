package api

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// FormField is one named text value of a multipart body. Field order is
// preserved in the encoded output.
type FormField struct {
	Name  string
	Value string
}

var crlf = []byte("\r\n")

// EncodeMultipart builds a multipart/form-data body from the given fields
// plus a single file part, using a fresh boundary. It returns the body and
// the Content-Type value carrying the boundary.
//
// The publishing service expects CRLF line breaks everywhere, including
// between the raw file bytes and the closing delimiter.
func EncodeMultipart(fields []FormField, fileField, fileName string, fileBytes []byte, fileContentType string) ([]byte, string) {
	boundary := newBoundary()

	var chunks [][]byte
	for _, field := range fields {
		chunks = append(chunks,
			[]byte("--"+boundary),
			[]byte(fmt.Sprintf(`Content-Disposition: form-data; name="%s"`, field.Name)),
			nil,
			[]byte(field.Value),
		)
	}

	chunks = append(chunks,
		[]byte("--"+boundary),
		[]byte(fmt.Sprintf(`Content-Disposition: form-data; name="%s"; filename="%s"`, fileField, fileName)),
		[]byte("Content-Type: "+fileContentType),
		nil,
		fileBytes,
	)

	chunks = append(chunks, []byte("--"+boundary+"--"), nil)

	body := bytes.Join(chunks, crlf)
	return body, "multipart/form-data; boundary=" + boundary
}

func newBoundary() string {
	id := uuid.New()
	return "----GamePublishBoundary" + hex.EncodeToString(id[:])
}
