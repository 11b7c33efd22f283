package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/friendex/internal/storage"
)

// nullableString converts an optional string to a value suitable for SQLite
// storage: nil pointers become SQL NULL.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr returns nil for a NULL column.
func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// escapeLike escapes LIKE wildcards so prefix searches match literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

func sinkOrNoop(sinks []storage.DiagnosticSink) storage.DiagnosticSink {
	for _, s := range sinks {
		if s != nil {
			return s
		}
	}
	return storage.NoopSink{}
}
