package statuspage

import (
	"net/url"
	"strconv"
)

// ListParams expresses the query parameters a list call accepts. The
// API paginates some collections; Page and PerPage are passed through
// verbatim and the library never aggregates across pages.
type ListParams struct {
	// Page: 1-based page number.
	Page int
	// PerPage: results per page.
	PerPage int
	// Filters: additional resource-specific query parameters, e.g.
	// "q" or "type" on the subscribers collection.
	Filters map[string]string
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string]string),
	}
}

// WithPage sets the page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPerPage sets the page size.
func (p *ListParams) WithPerPage(perPage int) *ListParams {
	p.PerPage = perPage

	return p
}

// WithFilter adds a resource-specific query parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the parameters to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(p.PerPage))
	}

	for key, value := range p.Filters {
		values.Set(key, value)
	}

	return values
}
