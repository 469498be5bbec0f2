package linkedin

import "context"

// PeopleSearchOptions are the filters accepted by SearchPeople. All fields
// are optional; zero values are omitted from the request.
type PeopleSearchOptions struct {
	Keywords   string
	FirstName  string
	LastName   string
	Title      string
	Company    string
	Location   string
	GeoIDs     []string
	OpenToWork *bool
	Start      int
}

// SearchPeople searches member profiles.
func (c *Client) SearchPeople(ctx context.Context, opts PeopleSearchOptions) (any, error) {
	params := NewParams().
		Set("keywords", opts.Keywords).
		Set("firstName", opts.FirstName).
		Set("lastName", opts.LastName).
		Set("title", opts.Title).
		Set("company", opts.Company).
		Set("location", opts.Location).
		SetList("geoIds", opts.GeoIDs)
	if opts.OpenToWork != nil {
		params.SetBool("openToWork", *opts.OpenToWork)
	}
	params.SetInt("start", opts.Start)
	return c.get(ctx, "search-people", params)
}

// CompanySearchOptions are the filters accepted by SearchCompanies.
type CompanySearchOptions struct {
	Keywords   string
	Location   string
	Industries []string
	Start      int
}

// SearchCompanies searches company pages.
func (c *Client) SearchCompanies(ctx context.Context, opts CompanySearchOptions) (any, error) {
	params := NewParams().
		Set("keywords", opts.Keywords).
		Set("location", opts.Location).
		SetList("industries", opts.Industries)
	params.SetInt("start", opts.Start)
	return c.get(ctx, "search-companies", params)
}

// PostSearchOptions are the filters accepted by SearchPosts.
type PostSearchOptions struct {
	Keywords         string
	AuthorCompanyIDs []string
	DatePosted       string
	SortBy           string
	Start            int
}

// SearchPosts searches public posts.
func (c *Client) SearchPosts(ctx context.Context, opts PostSearchOptions) (any, error) {
	params := NewParams().
		Set("keywords", opts.Keywords).
		SetList("authorCompanyIds", opts.AuthorCompanyIDs).
		Set("datePosted", opts.DatePosted).
		Set("sortBy", opts.SortBy)
	params.SetInt("start", opts.Start)
	return c.get(ctx, "search-posts", params)
}
