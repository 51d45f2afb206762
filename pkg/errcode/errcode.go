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

	// Label and taxonomy errors
	MalformedLabelError
	InvalidTaxonomyLevelError
	TaxonomyReadError

	// Geofence errors
	GeofenceReadError
	GeofenceFixReadError
	GeofenceFixError

	// Ensemble errors
	InvalidConfigurationError
	EmptyClassificationsError

	// Input errors
	InputReadError

	// Output errors
	OutputFormatError
	OutputWriteError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaCollationError
	StoreOpenError
	StoreSaveError
	StoreLockError
)
