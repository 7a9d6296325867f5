package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// RestClient reads and writes backend tables.
type RestClient struct {
	client *Client
}

// From starts a query against table.
func (r *RestClient) From(table string) *Query {
	return &Query{client: r.client, table: table, params: url.Values{}}
}

// Query is a filter chain over one table. Builders mutate and return the receiver.
type Query struct {
	client *Client
	table  string
	params url.Values
	single bool
}

// Select limits the returned columns.
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Eq keeps rows where column equals value.
func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

// EqInt is Eq for integer columns.
func (q *Query) EqInt(column string, value int64) *Query {
	return q.Eq(column, strconv.FormatInt(value, 10))
}

// ILike keeps rows where column contains substr, case-insensitively.
func (q *Query) ILike(column, substr string) *Query {
	q.params.Add(column, "ilike.*"+substr+"*")
	return q
}

// Order sorts by column.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	existing := q.params.Get("order")
	clause := column + "." + dir
	if existing != "" {
		clause = existing + "," + clause
	}
	q.params.Set("order", clause)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Single expects exactly one row; zero rows yields an error matched by IsNoRows.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

func (q *Query) path() string {
	return "/rest/v1/" + q.table
}

func (q *Query) headers(prefer ...string) map[string]string {
	h := map[string]string{}
	if q.single {
		h["Accept"] = "application/vnd.pgrst.object+json"
	}
	if len(prefer) > 0 {
		h["Prefer"] = strings.Join(prefer, ",")
	}
	return h
}

// Get runs the query and decodes the rows (or the single row) into out.
func (q *Query) Get(ctx context.Context, out any) error {
	return q.client.do(ctx, request{
		method:  http.MethodGet,
		path:    q.path(),
		query:   q.params,
		token:   AccessTokenFrom(ctx),
		headers: q.headers(),
	}, out)
}

// Insert adds rows and decodes the stored representation into out.
func (q *Query) Insert(ctx context.Context, rows any, out any) error {
	return q.client.do(ctx, request{
		method:  http.MethodPost,
		path:    q.path(),
		query:   q.params,
		body:    rows,
		token:   AccessTokenFrom(ctx),
		headers: q.headers("return=representation"),
	}, out)
}

// Upsert inserts rows, merging into existing rows that collide on onConflict.
func (q *Query) Upsert(ctx context.Context, rows any, onConflict string, out any) error {
	if onConflict != "" {
		q.params.Set("on_conflict", onConflict)
	}
	return q.client.do(ctx, request{
		method:  http.MethodPost,
		path:    q.path(),
		query:   q.params,
		body:    rows,
		token:   AccessTokenFrom(ctx),
		headers: q.headers("resolution=merge-duplicates", "return=representation"),
	}, out)
}

// Delete removes every row matching the filters.
func (q *Query) Delete(ctx context.Context) error {
	return q.client.do(ctx, request{
		method: http.MethodDelete,
		path:   q.path(),
		query:  q.params,
		token:  AccessTokenFrom(ctx),
	}, nil)
}
