package errors

// Error message constants for the swift-import-lint application
const (
	// File processing errors
	ErrMsgFailedToReadFile = "failed to read file"

	// Directory processing errors
	ErrMsgFailedToCheckPath      = "failed to check path"
	ErrMsgFailedToFindSwiftFiles = "failed to find Swift files in directory"
	ErrMsgFilesFailedToProcess   = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig = "failed to load configuration"

	// Info/warning messages
	InfoMsgNoSwiftFilesFound = "No Swift files found in directory: %s"
	InfoMsgFoundSwiftFiles   = "Found %d Swift files in directory: %s"
	InfoMsgErrorProcessing   = "Error processing %s: %v"
	InfoMsgCheckedCount      = "\nChecked %d files"
	InfoMsgViolationCount    = ": %d errors, %d warnings"
)
