package linkedin

import (
	"context"
	"fmt"
)

// GetPost retrieves a single post by its URN.
func (c *Client) GetPost(ctx context.Context, urn string) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: post urn", ErrMissingIdentifier)
	}
	return c.get(ctx, "post", NewParams().Set("urn", urn))
}

// GetPostComments lists comments on a post.
func (c *Client) GetPostComments(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: post urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "post-comments", params)
}

// GetPostReactions lists reactions on a post.
func (c *Client) GetPostReactions(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: post urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "post-reactions", params)
}

// GetPostReposts lists reposts of a post.
func (c *Client) GetPostReposts(ctx context.Context, urn string, page PageOptions) (any, error) {
	if urn == "" {
		return nil, fmt.Errorf("%w: post urn", ErrMissingIdentifier)
	}
	params := NewParams().Set("urn", urn)
	page.apply(params)
	return c.get(ctx, "post-reposts", params)
}
