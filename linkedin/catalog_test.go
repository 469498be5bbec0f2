package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures each request's path and query for assertions.
type recordingServer struct {
	*httptest.Server
	requests atomic.Int32
	lastPath string
	lastQry  map[string][]string
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.requests.Add(1)
		rs.lastPath = r.URL.Path
		rs.lastQry = r.URL.Query()
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) query(key string) string {
	if vals, ok := rs.lastQry[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func (rs *recordingServer) has(key string) bool {
	_, ok := rs.lastQry[key]
	return ok
}

func TestGetProfileEitherOrValidation(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetProfile(context.Background(), ProfileLookup{})
	require.ErrorIs(t, err, ErrMissingIdentifier)
	assert.Equal(t, int32(0), server.requests.Load(), "validation failures must not hit the network")
}

func TestGetProfileForwardsBothIdentifiers(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetProfile(context.Background(), ProfileLookup{Username: "someone", URN: "urn123"})
	require.NoError(t, err)
	// Both supplied: both forwarded, server arbitrates
	assert.Equal(t, "someone", server.query("username"))
	assert.Equal(t, "urn123", server.query("urn"))
}

func TestGetCompanyEitherOrValidation(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetCompany(context.Background(), CompanyLookup{})
	require.ErrorIs(t, err, ErrMissingIdentifier)
	assert.Equal(t, int32(0), server.requests.Load())

	_, err = client.GetCompany(context.Background(), CompanyLookup{UniversalName: "acme"})
	require.NoError(t, err)
	assert.Equal(t, "/company", server.lastPath)
	assert.Equal(t, "acme", server.query("universalName"))
	assert.False(t, server.has("id"))
}

func TestGetCompanyJobsJoinsIDs(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetCompanyJobs(context.Background(), []string{"1441", "1035"}, PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/company-jobs", server.lastPath)
	assert.Equal(t, "1441,1035", server.query("companyIds"))
	assert.Equal(t, "0", server.query("start"))

	_, err = client.GetCompanyJobs(context.Background(), []string{"1441"}, PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1441", server.query("companyIds"))

	_, err = client.GetCompanyJobs(context.Background(), nil, PageOptions{})
	require.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestGetProfileReactionsOmitsEmptyCursor(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetProfileReactions(context.Background(), "urn123", PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, "urn123", server.query("urn"))
	assert.False(t, server.has("cursor"), "empty cursor must be omitted entirely")

	_, err = client.GetProfileReactions(context.Background(), "urn123", PageOptions{Cursor: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", server.query("cursor"))
}

func TestSearchJobsBooleanFlags(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.SearchJobs(context.Background(), JobSearchOptions{Keywords: "golang"})
	require.NoError(t, err)
	assert.False(t, server.has("remote"), "absent flag must not be serialized as false")
	assert.False(t, server.has("easyApply"))

	remote := true
	easyApply := false
	_, err = client.SearchJobs(context.Background(), JobSearchOptions{
		Keywords:  "golang",
		Remote:    &remote,
		EasyApply: &easyApply,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", server.query("remote"))
	assert.Equal(t, "false", server.query("easyApply"))
}

func TestSearchJobsCompanyList(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.SearchJobs(context.Background(), JobSearchOptions{
		Keywords:   "golang",
		CompanyIDs: []string{"1035", "1441", "1035"},
	})
	require.NoError(t, err)
	assert.Equal(t, "1035,1441,1035", server.query("companyIds"), "no de-duplication, input order kept")
}

func TestPageCountOnlySentWhenPositive(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)

	_, err := client.GetPostComments(context.Background(), "urn:li:activity:1", PageOptions{Start: 10})
	require.NoError(t, err)
	assert.Equal(t, "10", server.query("start"))
	assert.False(t, server.has("count"))

	_, err = client.GetPostComments(context.Background(), "urn:li:activity:1", PageOptions{Count: 25})
	require.NoError(t, err)
	assert.Equal(t, "25", server.query("count"))
}

func TestCatalogPaths(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() (any, error)
		path string
	}{
		{"profile by url", func() (any, error) { return client.GetProfileByURL(ctx, "https://example.com/in/x") }, "/profile-by-url"},
		{"profile posts", func() (any, error) { return client.GetProfilePosts(ctx, "urn1", PageOptions{}) }, "/profile-posts"},
		{"profile comments", func() (any, error) { return client.GetProfileComments(ctx, "urn1", PageOptions{}) }, "/profile-comments"},
		{"profile recommendations", func() (any, error) {
			return client.GetProfileRecommendations(ctx, ProfileLookup{Username: "x"}, PageOptions{})
		}, "/profile-recommendations"},
		{"connection count", func() (any, error) {
			return client.GetProfileConnectionCount(ctx, ProfileLookup{URN: "urn1"})
		}, "/profile-connection-count"},
		{"company by domain", func() (any, error) { return client.GetCompanyByDomain(ctx, "acme.com") }, "/company-by-domain"},
		{"company posts", func() (any, error) { return client.GetCompanyPosts(ctx, "1441", PageOptions{}) }, "/company-posts"},
		{"company employee count", func() (any, error) {
			return client.GetCompanyEmployeeCount(ctx, CompanyLookup{ID: "1441"})
		}, "/company-employee-count"},
		{"job details", func() (any, error) { return client.GetJobDetails(ctx, "123") }, "/job-details"},
		{"search jobs", func() (any, error) { return client.SearchJobs(ctx, JobSearchOptions{Keywords: "go"}) }, "/search-jobs"},
		{"post", func() (any, error) { return client.GetPost(ctx, "urn1") }, "/post"},
		{"post reactions", func() (any, error) { return client.GetPostReactions(ctx, "urn1", PageOptions{}) }, "/post-reactions"},
		{"post reposts", func() (any, error) { return client.GetPostReposts(ctx, "urn1", PageOptions{}) }, "/post-reposts"},
		{"search people", func() (any, error) { return client.SearchPeople(ctx, PeopleSearchOptions{Keywords: "go"}) }, "/search-people"},
		{"search companies", func() (any, error) { return client.SearchCompanies(ctx, CompanySearchOptions{Keywords: "go"}) }, "/search-companies"},
		{"search posts", func() (any, error) { return client.SearchPosts(ctx, PostSearchOptions{Keywords: "go"}) }, "/search-posts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, tt.path, server.lastPath)
		})
	}
}

func TestMissingScalarIdentifiers(t *testing.T) {
	server := newRecordingServer(t)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	calls := []func() (any, error){
		func() (any, error) { return client.GetProfileByURL(ctx, "") },
		func() (any, error) { return client.GetProfilePosts(ctx, "", PageOptions{}) },
		func() (any, error) { return client.GetProfileReactions(ctx, "", PageOptions{}) },
		func() (any, error) { return client.GetCompanyByDomain(ctx, "") },
		func() (any, error) { return client.GetCompanyPosts(ctx, "", PageOptions{}) },
		func() (any, error) { return client.GetJobDetails(ctx, "") },
		func() (any, error) { return client.GetPost(ctx, "") },
	}

	for _, call := range calls {
		_, err := call()
		require.ErrorIs(t, err, ErrMissingIdentifier)
	}
	assert.Equal(t, int32(0), server.requests.Load())
}
