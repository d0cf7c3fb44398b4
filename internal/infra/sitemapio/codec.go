// Where: internal/infra/sitemapio/codec.go
// What: Byte-level encode/decode for site map documents.
// Why: Keep format and compression handling independent of the storage backend.
package sitemapio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
)

// DefaultIndent is the number of spaces used when writing JSON.
const DefaultIndent = 2

// EncodeOptions controls how documents are written.
type EncodeOptions struct {
	Indent     int
	EscapeHTML bool
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses data stored at loc into a document.
func Decode(data []byte, loc Location) (*sitemap.Document, error) {
	if loc.Compressed {
		plain, err := gunzip(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: decompress: %v", ErrParse, loc, err)
		}
		data = plain
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: content is not valid UTF-8", ErrParse, loc)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s: document is empty", ErrParse, loc)
	}

	var (
		doc *sitemap.Document
		err error
	)
	switch loc.Format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, loc, err)
	}
	return doc, nil
}

// Encode serializes doc for loc.
func Encode(doc *sitemap.Document, loc Location, opts EncodeOptions) ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	switch loc.Format {
	case FormatYAML:
		payload, err = encodeYAML(doc, opts)
	default:
		payload, err = encodeJSON(doc, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", loc, err)
	}
	if loc.Compressed {
		return gzipBytes(payload)
	}
	return payload, nil
}

func decodeJSON(data []byte) (*sitemap.Document, error) {
	var doc sitemap.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func encodeJSON(doc *sitemap.Document, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(opts.EscapeHTML)
	if opts.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gunzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contentType(loc Location) string {
	if loc.Compressed {
		return "application/gzip"
	}
	if loc.Format == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}
