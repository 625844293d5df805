package repository

const defaultPerPage = 10

type Pagination struct {
	Page    int
	PerPage int
}

// Normalized applies the defaults: page >= 1, perPage defaults to 10.
func (p Pagination) Normalized() (page, perPage, offset int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	perPage = p.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage, (page - 1) * perPage
}
