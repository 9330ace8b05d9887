package sources

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gnames/gningest/pkg/decode"
)

// StdinSource is the source name that means standard input.
const StdinSource = "-"

var labelJunk = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// IsURL returns true for http and https URLs.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FormatFromName guesses the format from the extension of a file path or
// of a URL path.
func FormatFromName(s string) (decode.Format, bool) {
	p := s
	if IsURL(s) {
		u, _ := url.Parse(s)
		p = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" {
		return decode.UnknownFormat, false
	}
	f, err := decode.NewFormat(ext)
	if err != nil {
		return decode.UnknownFormat, false
	}
	return f, true
}

// CleanLabel makes a label safe to use as a file name. Path separators
// and other unusual characters become "_", names made only of dots or
// underscores become empty.
func CleanLabel(label string) string {
	res := labelJunk.ReplaceAllString(strings.TrimSpace(label), "_")
	if strings.Trim(res, "._") == "" {
		return ""
	}
	return res
}

// DefaultLabel creates a file-name friendly label from the last element
// of a source path, prefixed with its 1-based index.
func DefaultLabel(source string, index int) string {
	name := "stdin"
	if source != StdinSource {
		p := source
		if IsURL(source) {
			u, _ := url.Parse(source)
			p = u.Path
		}
		name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		name = CleanLabel(name)
		if name == "" {
			name = "source"
		}
	}
	return fmt.Sprintf("%03d-%s", index, name)
}
