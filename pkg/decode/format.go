package decode

// Format is a content format supported by the decoders.
type Format int

const (
	UnknownFormat Format = iota
	JSON
	CSV
	XML
)

var formatNames = map[Format]string{
	UnknownFormat: "unknown",
	JSON:          "json",
	CSV:           "csv",
	XML:           "xml",
}

// DefaultFormat is used when a caller does not name a format.
const DefaultFormat = JSON

// String returns the lowercase name of the format.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return formatNames[UnknownFormat]
}

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{JSON, CSV, XML}
}

// NewFormat converts a format name to Format. Names must match exactly,
// "JSON" or " json " are not supported. An empty name means DefaultFormat.
// Unknown names return UnsupportedFormatError with the name as given.
func NewFormat(s string) (Format, error) {
	if s == "" {
		return DefaultFormat, nil
	}
	for _, f := range Formats() {
		if f.String() == s {
			return f, nil
		}
	}
	return UnknownFormat, NewUnsupportedFormatError(s)
}
