package linkedin

import (
	"context"
	"fmt"
)

// JobSearchOptions are the filters accepted by SearchJobs. All fields are
// optional; zero values are omitted from the request. Boolean flags are
// tri-state: a nil pointer means the filter is not applied at all.
type JobSearchOptions struct {
	Keywords           string
	Location           string
	CompanyIDs         []string
	DatePosted         string // e.g. "past-24h", "past-week", "past-month"
	Experience         []string
	Remote             *bool
	EasyApply          *bool
	UnderTenApplicants *bool
	Sort               string
	Start              int
}

// SearchJobs searches job postings.
func (c *Client) SearchJobs(ctx context.Context, opts JobSearchOptions) (any, error) {
	params := NewParams().
		Set("keywords", opts.Keywords).
		Set("location", opts.Location).
		SetList("companyIds", opts.CompanyIDs).
		Set("datePosted", opts.DatePosted).
		SetList("experience", opts.Experience)
	if opts.Remote != nil {
		params.SetBool("remote", *opts.Remote)
	}
	if opts.EasyApply != nil {
		params.SetBool("easyApply", *opts.EasyApply)
	}
	if opts.UnderTenApplicants != nil {
		params.SetBool("underTenApplicants", *opts.UnderTenApplicants)
	}
	params.Set("sort", opts.Sort)
	params.SetInt("start", opts.Start)
	return c.get(ctx, "search-jobs", params)
}

// GetJobDetails retrieves a single job posting.
func (c *Client) GetJobDetails(ctx context.Context, jobID string) (any, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: job id", ErrMissingIdentifier)
	}
	return c.get(ctx, "job-details", NewParams().Set("id", jobID))
}
