package usecase

// Field names for failures that are not scoped to a single request field.
const (
	FieldGeneral = "general"
	FieldServer  = "server"
)

// FieldError names a violated request field and explains the violation.
// Errors accumulate per request in the order the validators run.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
