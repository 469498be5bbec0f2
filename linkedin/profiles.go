package linkedin

import (
	"context"
	"fmt"
)

// ProfileLookup identifies a member profile by exactly one of its public
// username or its URN. Supplying both is allowed; the server arbitrates.
type ProfileLookup struct {
	Username string
	URN      string
}

func (l ProfileLookup) validate() error {
	if l.Username == "" && l.URN == "" {
		return fmt.Errorf("%w: username or urn", ErrMissingIdentifier)
	}
	return nil
}

func (l ProfileLookup) apply(params *Params) {
	params.Set("username", l.Username)
	params.Set("urn", l.URN)
}

// GetProfile retrieves the full profile for a member, including positions,
// education, skills, and certifications.
func (c *Client) GetProfile(ctx context.Context, lookup ProfileLookup) (any, error) {
	if err := lookup.validate(); err != nil {
		return nil, err
	}
	params := NewParams()
	lookup.apply(params)
	return c.get(ctx, "profile", params)
}

// GetProfileByURL retrieves a profile from its public profile URL.
func (c *Client) GetProfileByURL(ctx context.Context, profileURL string) (any, error) {
	if profileURL == "" {
		return nil, fmt.Errorf("%w: profile url", ErrMissingIdentifier)
	}
	return c.get(ctx, "profile-by-url", NewParams().Set("url", profileURL))
}

// GetProfilePosts lists posts authored by the member.
func (c *Client) GetProfilePosts(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "profile-posts", params)
}

// GetProfileComments lists comments the member left on other posts.
func (c *Client) GetProfileComments(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "profile-comments", params)
}

// GetProfileReactions lists reactions the member left on posts. An empty
// cursor requests the first page.
func (c *Client) GetProfileReactions(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "profile-reactions", params)
}

// GetProfileRecommendations lists recommendations the member has received.
func (c *Client) GetProfileRecommendations(ctx context.Context, lookup ProfileLookup, page PageOptions) (any, error) {
	if err := lookup.validate(); err != nil {
		return nil, err
	}
	params := NewParams()
	lookup.apply(params)
	page.apply(params)
	return c.get(ctx, "profile-recommendations", params)
}

// GetProfileConnectionCount returns the member's connection and follower
// counts.
func (c *Client) GetProfileConnectionCount(ctx context.Context, lookup ProfileLookup) (any, error) {
	if err := lookup.validate(); err != nil {
		return nil, err
	}
	params := NewParams()
	lookup.apply(params)
	return c.get(ctx, "profile-connection-count", params)
}
