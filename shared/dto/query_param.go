package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams shapes a collection read. Lists are served whole, so only the
// ordering is normally set; Page and Limit stay available for internal callers.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns params sorted by column in dir.
func OrderBy(column, dir string) QueryParams {
	return QueryParams{SortBy: column, SortDir: dir}
}
