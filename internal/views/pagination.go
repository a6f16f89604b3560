package views

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/common"
)

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page  int64
	Limit int64
}

// DefaultPageRequest is page 1 of size 10.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: DefaultPage, Limit: DefaultLimit}
}

// ParsePageRequest reads page and limit. Absent values take defaults,
// non-positive or non-integer values are InvalidArgument and limit is
// capped at MaxLimit. A page whose offset overflows is InvalidArgument.
func ParsePageRequest(values url.Values) (PageRequest, error) {
	page, err := positiveParam(values, "page", DefaultPage)
	if err != nil {
		return PageRequest{}, err
	}
	limit, err := positiveParam(values, "limit", DefaultLimit)
	if err != nil {
		return PageRequest{}, err
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// the skip offset must fit in an int64
	if page-1 > math.MaxInt64/limit {
		return PageRequest{}, common.InvalidArgument("page is out of range")
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

func positiveParam(values url.Values, name string, def int64) (int64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, common.InvalidArgument(name + " must be a positive integer")
	}
	return n, nil
}

func (p PageRequest) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Page is one slice of a listing with its position in the whole.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, req.Limit)
	return &Page[T]{
		Items:       items,
		Page:        req.Page,
		Limit:       req.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1,
	}
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// facetStage returns the requested slice and the total count in one round
// trip. shape runs on the cut page only.
func facetStage(req PageRequest, shape ...bson.D) bson.D {
	items := bson.A{
		bson.D{{Key: "$skip", Value: req.Skip()}},
		bson.D{{Key: "$limit", Value: req.Limit}},
	}
	for _, stage := range shape {
		items = append(items, stage)
	}
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "items", Value: items},
		{Key: "meta", Value: bson.A{
			bson.D{{Key: "$count", Value: "total"}},
		}},
	}}}
}

// Listing is a filtered and sorted base pipeline over Collection plus the
// stages that shape each returned item.
type Listing struct {
	Collection string
	Filter     mongo.Pipeline
	Shape      []bson.D
}

// Pipeline appends the page cut to the listing.
func (l Listing) Pipeline(req PageRequest) mongo.Pipeline {
	pipeline := make(mongo.Pipeline, 0, len(l.Filter)+1)
	pipeline = append(pipeline, l.Filter...)
	return append(pipeline, facetStage(req, l.Shape...))
}

type facetResult[T any] struct {
	Items []T `bson:"items"`
	Meta  []struct {
		Total int64 `bson:"total"`
	} `bson:"meta"`
}

func (f facetResult[T]) total() int64 {
	if len(f.Meta) == 0 {
		return 0
	}
	return f.Meta[0].Total
}
