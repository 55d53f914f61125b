package storage

import (
	"database/sql"

	"github.com/dentadesk/dentadesk/internal/model"
)

func writeResult(res sql.Result) (model.WriteResult, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return model.WriteResult{}, err
	}
	// SQLite always knows the last rowid on the connection; errors here
	// would mean a driver bug, not a failed write.
	id, err := res.LastInsertId()
	if err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{RowsAffected: affected, LastInsertID: id}, nil
}
