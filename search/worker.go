// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/internal/folding"
)

// Request is a search request sent to a Worker.
type Request struct {
	// Seq identifies the request. It is echoed in the Response.
	Seq uint64

	// Query is the raw query text.
	Query string
}

// Response is the answer to a Request.
type Response struct {
	Seq    uint64
	Query  string
	Result *Result
}

// WorkerOptions are options for a Worker.
type WorkerOptions struct {
	// QueueSize is the number of requests and responses that can be
	// buffered before Submit blocks.
	QueueSize int

	// CacheSize is the number of recent results to keep. Zero disables the
	// cache.
	CacheSize int

	// Logger, if set, receives debug messages for each request.
	Logger *log.Logger
}

// DefaultWorkerOptions is the default options for a Worker.
var DefaultWorkerOptions = &WorkerOptions{
	QueueSize: 16,
	CacheSize: 64,
}

// Worker runs searches in a background goroutine. The Worker owns a private
// copy of the record list and communicates only through its request and
// response channels. Requests are answered one at a time in the order they
// were submitted. Stale requests are not cancelled; consumers should use a
// Tracker to ignore out of date responses.
type Worker struct {
	searcher  *Searcher
	cache     *lru.Cache[string, *Result]
	requests  chan Request
	responses chan Response
	logger    *log.Logger
}

// NewWorker returns a new Worker over a copy of records. The Worker does not
// start until Run is called.
func NewWorker(records []*sabdkosh.Record, options *WorkerOptions) (*Worker, error) {
	if options == nil {
		options = DefaultWorkerOptions
	}
	if options.QueueSize < 0 {
		return nil, fmt.Errorf("invalid queue size: %d", options.QueueSize)
	}

	w := &Worker{
		searcher:  NewSearcher(slices.Clone(records)),
		requests:  make(chan Request, options.QueueSize),
		responses: make(chan Response, options.QueueSize),
		logger:    options.Logger,
	}
	if options.CacheSize > 0 {
		c, err := lru.New[string, *Result](options.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
		w.cache = c
	}
	return w, nil
}

// Run processes requests until ctx is done and then returns the context's
// error. The response channel is closed when Run returns.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.responses)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-w.requests:
			resp := w.handle(req)
			select {
			case w.responses <- resp:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Submit enqueues a request. It blocks while the queue is full and returns
// the context's error if ctx is done first.
func (w *Worker) Submit(ctx context.Context, req Request) error {
	select {
	case w.requests <- req:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("submitting search %d: %w", req.Seq, ctx.Err())
	}
}

// Responses returns the channel on which responses are delivered.
func (w *Worker) Responses() <-chan Response {
	return w.responses
}

func (w *Worker) handle(req Request) Response {
	start := time.Now()
	key := folding.FoldQuery(req.Query)

	res, cached := w.lookup(key)
	if !cached {
		res = w.searcher.Search(key)
		if w.cache != nil {
			w.cache.Add(key, res)
		}
	}

	if w.logger != nil {
		w.logger.Debug("search",
			"seq", req.Seq,
			"query", key,
			"results", res.Len(),
			"cached", cached,
			"took", time.Since(start),
		)
	}

	return Response{
		Seq:    req.Seq,
		Query:  req.Query,
		Result: res,
	}
}

func (w *Worker) lookup(key string) (*Result, bool) {
	if w.cache == nil {
		return nil, false
	}
	return w.cache.Get(key)
}

// Tracker issues sequence numbers for requests and reports whether a
// response is still current. A Tracker belongs to a single consumer and is
// not safe for concurrent use.
type Tracker struct {
	latest uint64
}

// Issue returns a new request for query with the next sequence number.
func (t *Tracker) Issue(query string) Request {
	t.latest++
	return Request{
		Seq:   t.latest,
		Query: query,
	}
}

// Latest returns the sequence number of the most recently issued request.
func (t *Tracker) Latest() uint64 {
	return t.latest
}

// Cancel marks every request issued so far as stale.
func (t *Tracker) Cancel() {
	t.latest++
}

// Current returns true if resp answers the most recently issued request.
// Responses to older requests should be discarded.
func (t *Tracker) Current(resp Response) bool {
	return resp.Seq >= t.latest
}
