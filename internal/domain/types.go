package domain

// FieldErrors maps a field key to a short uppercase error code. A key is
// present only while the field is known-invalid; absence means "no known
// error", which is weaker than "validated OK" for lazily-checked fields.
type FieldErrors map[string]string

// Set records code for field, or clears the field when code is empty.
func (e FieldErrors) Set(field, code string) {
	if code == "" {
		delete(e, field)
		return
	}
	e[field] = code
}

// Clear removes any error recorded for field.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

// Has reports whether field currently carries an error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Copy returns a detached snapshot of the map.
func (e FieldErrors) Copy() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// SubmissionResult is the boundary response of the submission endpoints.
type SubmissionResult struct {
	Success bool   `json:"success"`
	RefID   string `json:"refId,omitempty"`
	Error   string `json:"error,omitempty"`
}
