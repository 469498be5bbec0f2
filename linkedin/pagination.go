package linkedin

// PageOptions carries the pagination parameters shared by list endpoints.
// Start is always forwarded (the API treats 0 as the first page). Count is
// forwarded only when positive, leaving the page size to the server
// otherwise. An empty cursor means "not provided" and is omitted from the
// query entirely.
type PageOptions struct {
	Start  int
	Count  int
	Cursor string
}

func (p PageOptions) apply(params *Params) {
	params.SetInt("start", p.Start)
	if p.Count > 0 {
		params.SetInt("count", p.Count)
	}
	params.Set("cursor", p.Cursor)
}
