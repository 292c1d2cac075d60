package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter.
const (
	FieldFile       = "file_path"
	FieldLine       = "line"
	FieldTeam       = "team"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldOutputFile = "output_file"
	FieldReportID   = "report_id"
)
