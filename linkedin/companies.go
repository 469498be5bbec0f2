package linkedin

import (
	"context"
	"fmt"
)

// CompanyLookup identifies a company by exactly one of its numeric ID or
// its universal name (the slug from the company page URL). Supplying both
// is allowed; the server arbitrates.
type CompanyLookup struct {
	ID            string
	UniversalName string
}

func (l CompanyLookup) validate() error {
	if l.ID == "" && l.UniversalName == "" {
		return fmt.Errorf("%w: company id or universal name", ErrMissingIdentifier)
	}
	return nil
}

func (l CompanyLookup) apply(params *Params) {
	params.Set("id", l.ID)
	params.Set("universalName", l.UniversalName)
}

// GetCompany retrieves company details.
func (c *Client) GetCompany(ctx context.Context, lookup CompanyLookup) (any, error) {
	if err := lookup.validate(); err != nil {
		return nil, err
	}
	params := NewParams()
	lookup.apply(params)
	return c.get(ctx, "company", params)
}

// GetCompanyByDomain retrieves company details from a web domain.
func (c *Client) GetCompanyByDomain(ctx context.Context, domain string) (any, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain", ErrMissingIdentifier)
	}
	return c.get(ctx, "company-by-domain", NewParams().Set("domain", domain))
}

// GetCompanyPosts lists posts published on a company page.
func (c *Client) GetCompanyPosts(ctx context.Context, companyID string, page PageOptions) (any, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: company id", ErrMissingIdentifier)
	}
	params := NewParams().Set("companyId", companyID)
	page.apply(params)
	return c.get(ctx, "company-posts", params)
}

// GetCompanyJobs lists open jobs at one or more companies. The IDs are
// sent as a single comma-joined parameter in the order given.
func (c *Client) GetCompanyJobs(ctx context.Context, companyIDs []string, page PageOptions) (any, error) {
	if len(companyIDs) == 0 {
		return nil, fmt.Errorf("%w: company ids", ErrMissingIdentifier)
	}
	params := NewParams().SetList("companyIds", companyIDs)
	page.apply(params)
	return c.get(ctx, "company-jobs", params)
}

// GetCompanyEmployeeCount returns the company's employee count bucket and
// follower count.
func (c *Client) GetCompanyEmployeeCount(ctx context.Context, lookup CompanyLookup) (any, error) {
	if err := lookup.validate(); err != nil {
		return nil, err
	}
	params := NewParams()
	lookup.apply(params)
	return c.get(ctx, "company-employee-count", params)
}
