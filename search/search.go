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

// Package search implements tiered search over dictionary records.
//
// A query is matched against every record once, in order. Each matching
// record is placed in exactly one tier: the headword equals the query
// ([Exact]), starts with it ([Prefix]), contains it ([Contains]), or the
// query appears in the record's grammar labels or senses ([Definition]).
// Results list the tiers in that order and keep the input order within each
// tier.
package search

import (
	"strings"

	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/internal/folding"
)

// Tier is the kind of match a record made.
type Tier int

const (
	// None is returned for records that are not part of a tiered result.
	None Tier = iota - 1

	// Exact means the headword equals the query.
	Exact

	// Prefix means the headword starts with the query.
	Prefix

	// Contains means the headword contains the query.
	Contains

	// Definition means a grammar label or sense contains the query.
	Definition

	numTiers
)

// String returns the name of the tier.
func (t Tier) String() string {
	switch t {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case Contains:
		return "contains"
	case Definition:
		return "definition"
	default:
		return "none"
	}
}

// Result is the result of a search. Results may be shared between callers
// and must not be modified.
type Result struct {
	// Query is the normalized query.
	Query string

	// Records are the matching records ordered by tier.
	Records []*sabdkosh.Record

	// Exact is the set of headwords in the Exact tier.
	Exact map[string]struct{}

	// Counts holds the number of records in each tier.
	Counts [numTiers]int
}

// Len returns the number of records in the result.
func (r *Result) Len() int {
	return len(r.Records)
}

// IsExact returns true if word matched the query exactly.
func (r *Result) IsExact(word string) bool {
	_, ok := r.Exact[word]
	return ok
}

// Tier returns the records in tier t.
func (r *Result) Tier(t Tier) []*sabdkosh.Record {
	if t < Exact || t >= numTiers {
		return nil
	}
	start := 0
	for i := Exact; i < t; i++ {
		start += r.Counts[i]
	}
	end := start + r.Counts[t]
	return r.Records[start:end:end]
}

// TierOf returns the tier of the i-th record. It returns None when the query
// was empty or i is out of range.
func (r *Result) TierOf(i int) Tier {
	if i < 0 || i >= len(r.Records) {
		return None
	}
	for t := Exact; t < numTiers; t++ {
		if i < r.Counts[t] {
			return t
		}
		i -= r.Counts[t]
	}
	return None
}

// foldedRecord holds the folded searchable fields of a record.
type foldedRecord struct {
	word string

	// text holds the folded grammar labels and senses.
	text []string
}

func fold(r *sabdkosh.Record) foldedRecord {
	f := foldedRecord{
		word: folding.FoldText(r.Word),
	}
	for _, d := range r.Definitions {
		if d.Grammar != "" {
			f.text = append(f.text, folding.FoldText(d.Grammar))
		}
		for _, s := range d.Senses {
			f.text = append(f.text, folding.FoldText(s))
		}
	}
	return f
}

func (f *foldedRecord) classify(query string) Tier {
	switch {
	case f.word == query:
		return Exact
	case strings.HasPrefix(f.word, query):
		return Prefix
	case strings.Contains(f.word, query):
		return Contains
	}
	for _, t := range f.text {
		if strings.Contains(t, query) {
			return Definition
		}
	}
	return None
}

// Searcher searches a fixed snapshot of records. Records are folded once
// when the Searcher is created.
//
// Definition matches are found in each grammar label and each sense on its
// own, so a query never matches across two senses or across a label and a
// sense.
type Searcher struct {
	records []*sabdkosh.Record
	folded  []foldedRecord
}

// NewSearcher returns a Searcher over records. The records must not be
// modified while the Searcher is in use.
func NewSearcher(records []*sabdkosh.Record) *Searcher {
	s := &Searcher{
		records: records,
		folded:  make([]foldedRecord, len(records)),
	}
	for i, r := range records {
		s.folded[i] = fold(r)
	}
	return s
}

// Len returns the number of records in the snapshot.
func (s *Searcher) Len() int {
	return len(s.records)
}

// Search returns the records matching query. If the normalized query is
// empty all records are returned in their original order.
func (s *Searcher) Search(query string) *Result {
	q := folding.FoldQuery(query)
	res := &Result{
		Query: q,
		Exact: map[string]struct{}{},
	}
	if q == "" {
		res.Records = s.records
		return res
	}

	var tiers [numTiers][]*sabdkosh.Record
	for i := range s.folded {
		t := s.folded[i].classify(q)
		if t == None {
			continue
		}
		tiers[t] = append(tiers[t], s.records[i])
	}

	n := 0
	for t := range tiers {
		res.Counts[t] = len(tiers[t])
		n += len(tiers[t])
	}
	res.Records = make([]*sabdkosh.Record, 0, n)
	for t := range tiers {
		res.Records = append(res.Records, tiers[t]...)
	}
	for _, r := range tiers[Exact] {
		res.Exact[r.Word] = struct{}{}
	}

	return res
}

// Search is a convenience function that searches records for query.
func Search(records []*sabdkosh.Record, query string) *Result {
	return NewSearcher(records).Search(query)
}
