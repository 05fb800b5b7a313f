package postgres

import "order-reports/internal/domain"

// collectRows drains a result set into typed projection records. Scan
// failures mean the generated query does not match the projection shape and
// surface as a domain.ResultMappingError; iteration failures (lost
// connection mid-stream) surface as-is for the caller to classify.
func collectRows[T any](rows Rows, report string, scan func(Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, &domain.ResultMappingError{Report: report, Err: err}
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
