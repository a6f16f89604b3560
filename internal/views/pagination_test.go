package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"google.golang.org/grpc/codes"

	"github.com/web3ngineer/UTube/internal/common"
)

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    PageRequest
		wantErr bool
	}{
		{name: "defaults", query: "", want: PageRequest{Page: 1, Limit: 10}},
		{name: "explicit", query: "page=3&limit=25", want: PageRequest{Page: 3, Limit: 25}},
		{name: "limit capped", query: "limit=1000", want: PageRequest{Page: 1, Limit: MaxLimit}},
		{name: "zero page", query: "page=0", wantErr: true},
		{name: "negative limit", query: "limit=-5", wantErr: true},
		{name: "not a number", query: "page=two", wantErr: true},
		{name: "offset overflows", query: "page=922337203685477582&limit=10", wantErr: true},
		{name: "offset overflows at capped limit", query: "page=92233720368547760&limit=1000", wantErr: true},
		{name: "largest page", query: "page=92233720368547759&limit=100", want: PageRequest{Page: 92233720368547759, Limit: 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := ParsePageRequest(values)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, codes.InvalidArgument, common.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.Skip(), int64(0))
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name     string
		req      PageRequest
		items    []int
		total    int64
		wantPgs  int64
		wantNext bool
		wantPrev bool
	}{
		{name: "empty", req: PageRequest{Page: 1, Limit: 10}, total: 0, wantPgs: 0},
		{name: "single partial page", req: PageRequest{Page: 1, Limit: 10}, items: []int{1, 2, 3}, total: 3, wantPgs: 1},
		{name: "exact multiple", req: PageRequest{Page: 1, Limit: 5}, items: []int{1, 2, 3, 4, 5}, total: 10, wantPgs: 2, wantNext: true},
		{name: "middle page", req: PageRequest{Page: 2, Limit: 3}, items: []int{4, 5, 6}, total: 10, wantPgs: 4, wantNext: true, wantPrev: true},
		{name: "last page", req: PageRequest{Page: 4, Limit: 3}, items: []int{10}, total: 10, wantPgs: 4, wantPrev: true},
		{name: "past the end", req: PageRequest{Page: 9, Limit: 3}, total: 10, wantPgs: 4, wantPrev: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage(tc.items, tc.req, tc.total)

			assert.NotNil(t, page.Items)
			assert.LessOrEqual(t, int64(len(page.Items)), page.Limit)
			assert.Equal(t, tc.total, page.TotalItems)
			assert.Equal(t, tc.wantPgs, page.TotalPages)
			assert.Equal(t, tc.wantNext, page.HasNextPage)
			assert.Equal(t, tc.wantPrev, page.HasPrevPage)
		})
	}
}

func TestTotalPages(t *testing.T) {
	for total := int64(0); total <= 50; total++ {
		for limit := int64(1); limit <= 12; limit++ {
			want := total / limit
			if total%limit != 0 {
				want++
			}
			assert.Equal(t, want, TotalPages(total, limit), "total=%d limit=%d", total, limit)
		}
	}
	assert.Equal(t, int64(0), TotalPages(10, 0))
}

func TestListingPipeline_FacetCutsPage(t *testing.T) {
	l := Listing{
		Filter: []bson.D{match(bson.D{{Key: "owner", Value: 1}})},
		Shape:  []bson.D{project(bson.D{{Key: "title", Value: 1}})},
	}

	pipeline := l.Pipeline(PageRequest{Page: 3, Limit: 20})
	require.Len(t, pipeline, 2)

	facet := pipeline[1].Map()["$facet"].(bson.D).Map()
	items := facet["items"].(bson.A)
	require.Len(t, items, 3)
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(40)}}, items[0])
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(20)}}, items[1])
	assert.Equal(t, "$project", items[2].(bson.D)[0].Key)
	assert.Equal(t, bson.A{bson.D{{Key: "$count", Value: "total"}}}, facet["meta"])
}

func TestFacetResultTotal(t *testing.T) {
	var empty facetResult[int]
	assert.Equal(t, int64(0), empty.total())

	withMeta := facetResult[int]{Meta: []struct {
		Total int64 `bson:"total"`
	}{{Total: 42}}}
	assert.Equal(t, int64(42), withMeta.total())
}
