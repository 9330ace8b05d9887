package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Source resolution errors
	SourceFileError
	SourceURLError
	SourceHTTPStatusError
	SourceTooLargeError
	SourceStdinError

	// Batch errors
	SourcesConfigError
	SourcesEmptyError
	BatchFailedSourcesError
)
