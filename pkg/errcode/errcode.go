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
	RenameFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchURLError
	FetchEncodingError
	FetchRequestError
	FetchStatusError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBDriverError

	// Lifecycle errors
	BackupError
	BackupNotFoundError
	RestoreError

	// Schema errors
	SchemaInitError
	SchemaDocumentError
	SchemaVersionError
	SchemaFieldsError

	// Metadata errors
	MetadataDirError
	MetadataParseError

	// Populate errors
	PopulateColumnError
	PopulateLookupError
	PopulateCorrectionError
	PopulateAssayError
	PopulateIntegrityError
	PopulateCommitError
)
