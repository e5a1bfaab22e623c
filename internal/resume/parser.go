package resume

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/abhinav086/ai-interview/pkg/model"
)

// ErrUnsupportedType is returned before any parsing when the upload is not a
// PDF or DOCX document.
var ErrUnsupportedType = errors.New("unsupported file type: please upload a PDF or DOCX file")

// ErrFileTooLarge is returned before any parsing when the upload exceeds the
// configured size cap.
var ErrFileTooLarge = errors.New("file too large")

// ErrNoText means the document yielded no extractable text; no candidate is
// created from such an upload.
var ErrNoText = errors.New("no text could be extracted from the document")

// Parsed is the result of ingesting one resume upload.
type Parsed struct {
	Text  string
	Name  string
	Email string
	Phone string
}

// MissingFields lists the contact fields the heuristics failed to find, in
// the fixed collection order.
func (p *Parsed) MissingFields() []string {
	present := map[string]bool{
		model.FieldName:  p.Name != "",
		model.FieldEmail: p.Email != "",
		model.FieldPhone: p.Phone != "",
	}
	var missing []string
	for _, field := range model.ContactFieldOrder {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// Parser validates resume uploads and extracts text plus contact heuristics.
type Parser struct {
	uploadsDir string
	maxSize    int64
}

func NewParser(uploadsDir string, maxSizeMB int64) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
		maxSize:    maxSizeMB * 1024 * 1024,
	}
}

// Validate rejects unsupported or oversized files. It runs before any bytes
// are processed so a bad upload never touches the parser.
func (p *Parser) Validate(filename string, size int64) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
	default:
		return ErrUnsupportedType
	}
	if size > p.maxSize {
		return fmt.Errorf("%w: limit is %d MB", ErrFileTooLarge, p.maxSize/(1024*1024))
	}
	return nil
}

// Parse saves the upload, extracts plain text with docconv, and applies the
// contact heuristics to it.
func (p *Parser) Parse(filename string, reader io.Reader) (*Parsed, error) {
	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(p.uploadsDir, filepath.Base(filename))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}
	return fromText(res.Body)
}

// fromText applies the contact heuristics to extracted document text. A
// document that yields no text creates no candidate.
func fromText(text string) (*Parsed, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}
	parsed := &Parsed{Text: text}
	parsed.Name = ExtractName(text)
	parsed.Email = ExtractEmail(text)
	parsed.Phone = ExtractPhone(text)
	return parsed, nil
}
