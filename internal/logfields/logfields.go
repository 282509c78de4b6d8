package logfields

import "log/slog"

// Canonical log field names shared by every package that logs.
const (
	KeyRunID      = "run_id"
	KeyCommand    = "command"
	KeyPeriod     = "period"
	KeyEntry      = "entry"
	KeyTag        = "tag"
	KeyPath       = "path"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyChars      = "chars"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Command(name string) slog.Attr   { return slog.String(KeyCommand, name) }
func Period(p string) slog.Attr       { return slog.String(KeyPeriod, p) }
func Entry(id string) slog.Attr       { return slog.String(KeyEntry, id) }
func Tag(name string) slog.Attr       { return slog.String(KeyTag, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Chars(n int) slog.Attr           { return slog.Int(KeyChars, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
