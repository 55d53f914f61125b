package model

// WriteResult is the outcome of a mutating statement: how many rows it
// touched and, for inserts, the identifier the store assigned.
type WriteResult struct {
	RowsAffected int64 `json:"rows_affected"`
	LastInsertID int64 `json:"last_insert_id"`
}
