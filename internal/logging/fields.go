package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldEndpoint   = "endpoint"
	FieldEventID    = "event_id"
	FieldTeamID     = "team_id"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
)
