package engine

import "fmt"

// SchemaError reports a failed CREATE for one table during schema sync.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to create table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// TransferError reports a failed truncate, read or insert for one table
// during data sync.
type TransferError struct {
	Table string
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to sync data for table %s: %v", e.Table, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
