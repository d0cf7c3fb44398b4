// Where: internal/infra/sitemapio/location.go
// What: Location parsing for site map sources and targets.
// Why: Route a path or s3:// URL to the right backend and codec.
package sitemapio

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Format is the serialization used for a location.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const gzipExt = ".gz"

// Location identifies where a document is read from or written to.
type Location struct {
	Raw        string
	Bucket     string // set for s3:// locations
	Key        string // object key, or the local path
	Format     Format
	Compressed bool
}

// IsRemote reports whether the location lives in object storage.
func (l Location) IsRemote() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	return l.Raw
}

// ParseLocation accepts a local path or an s3://bucket/key URL.
func ParseLocation(raw string) (Location, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Location{}, fmt.Errorf("%w: location is required", ErrIO)
	}

	loc := Location{Raw: trimmed, Key: trimmed}
	if strings.HasPrefix(strings.ToLower(trimmed), "s3://") {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return Location{}, fmt.Errorf("%w: invalid s3 location %q: %v", ErrIO, trimmed, err)
		}
		key := strings.TrimPrefix(parsed.Path, "/")
		if parsed.Host == "" || key == "" {
			return Location{}, fmt.Errorf("%w: s3 location %q needs a bucket and key", ErrIO, trimmed)
		}
		loc.Bucket = parsed.Host
		loc.Key = key
	}

	name := strings.ToLower(path.Base(filepath.ToSlash(loc.Key)))
	if strings.HasSuffix(name, gzipExt) {
		loc.Compressed = true
		name = strings.TrimSuffix(name, gzipExt)
	}
	switch path.Ext(name) {
	case ".yaml", ".yml":
		loc.Format = FormatYAML
	default:
		loc.Format = FormatJSON
	}
	return loc, nil
}

// SiblingPath derives "<dir>/<stem><suffix><ext>" next to location, keeping
// any compression and format extensions. For example "site/map.json" with
// suffix "-reversed" becomes "site/map-reversed.json".
func SiblingPath(location, suffix string) (string, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return "", err
	}

	key := filepath.ToSlash(loc.Key)
	dir, base := path.Split(key)
	ext := ""
	if loc.Compressed {
		ext = base[len(base)-len(gzipExt):]
		base = base[:len(base)-len(gzipExt)]
	}
	ext = path.Ext(base) + ext
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		return "", fmt.Errorf("%w: cannot derive output name from %q", ErrIO, location)
	}
	derived := dir + stem + suffix + ext

	if loc.IsRemote() {
		return "s3://" + loc.Bucket + "/" + derived, nil
	}
	return filepath.FromSlash(derived), nil
}
