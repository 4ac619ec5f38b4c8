package compose

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const version = "1.0.0"

// Attachment is a file attached to a composed message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a fully composed, transient message ready for the send gate.
// Built fresh per send and never persisted.
type Message struct {
	Headers     map[string]string
	Sender      string
	Recipient   string
	Subject     string
	Body        string
	Text        string
	CC          string
	BCC         string
	Boundary    string
	Attachments []Attachment

	// AllSuppressed marks a message whose every recipient opted out. The
	// send gate treats it as a successful no-op.
	AllSuppressed bool
}

// NewMessage creates an empty message with the default header set and a
// fresh MIME boundary.
func NewMessage() *Message {
	boundary := "msg-" + uuid.NewString()
	return &Message{
		Boundary: boundary,
		Headers: map[string]string{
			"MIME-Version": "1.0",
			"Content-Type": `multipart/mixed;boundary="` + boundary + `"`,
			"X-Priority":   "3",
			"User-Agent":   "courier " + version,
		},
	}
}

// AddHeader sets a header, replacing any previous value for the name.
func (m *Message) AddHeader(name, value string) {
	m.Headers[name] = value
}

// AddAttachment attaches raw content under the given filename.
func (m *Message) AddAttachment(filename, contentType string, content []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	m.Attachments = append(m.Attachments, Attachment{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})
}

// AddAttachmentFile reads a file from disk and attaches it, detecting the
// content type from the extension.
func (m *Message) AddAttachmentFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("compose: failed to read attachment: %w", err)
	}
	m.AddAttachment(filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)), content)
	return nil
}

// MIME renders the multipart message body: the HTML part, one part per
// attachment, and the closing boundary marker.
func (m *Message) MIME() string {
	var b strings.Builder

	b.WriteString("--" + m.Boundary + "\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\n\n\n")
	b.WriteString(m.Body)
	b.WriteString("\n\n")

	for _, a := range m.Attachments {
		b.WriteString("--" + m.Boundary + "\n")
		b.WriteString("Content-Type: " + a.ContentType + "; name=" + a.Filename + "\n")
		b.WriteString("Content-Disposition: attachment\n")
		b.WriteString("Content-Transfer-Encoding: base64\n\n")
		b.WriteString(chunkBase64(a.Content))
		b.WriteString("\n\n")
	}

	b.WriteString("--" + m.Boundary + "--\n")
	return b.String()
}

// HeaderLines renders the header block with any required headers merged in
// (required values win), in stable order.
func (m *Message) HeaderLines(required map[string]string) string {
	merged := make(map[string]string, len(m.Headers)+len(required))
	for name, value := range m.Headers {
		merged[name] = value
	}
	for name, value := range required {
		merged[name] = value
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+": "+merged[name])
	}
	return strings.Join(lines, "\r\n") + "\nThis is a multi-part message in MIME format.\n"
}

// chunkBase64 encodes content in base64 split into 76-character lines per
// RFC 2045.
func chunkBase64(content []byte) string {
	encoded := base64.StdEncoding.EncodeToString(content)
	var b strings.Builder
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	return b.String()
}
