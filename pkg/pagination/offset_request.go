package pagination

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Normalize clamps out of range offset pagination parameters.
func (r *OffsetRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = PageDefaultSize
	}
	if r.Limit > PageMaxSize {
		r.Limit = PageMaxSize
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}
