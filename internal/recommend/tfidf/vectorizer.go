// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package tfidf turns a small corpus of item documents into TF-IDF vectors
// and an item-by-item cosine similarity matrix.
//
// A Space is built by the pure function Fit and is read-only afterwards.
// Nothing is cached between calls: every catalog gets its own vocabulary,
// IDF weights, and matrix, so concurrent callers never share state.
//
// # Weighting
//
//	tf(t, d)  = raw count of term t in document d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each row is L2-normalized
//
// Because rows are unit length, the dot product of two rows is their cosine.
// Term weights are never negative, so similarities fall in [0, 1].
//
// # Cost
//
// The matrix is computed eagerly and is O(n²) in the number of documents.
// Catalogs are request-scoped and hold tens to low hundreds of items.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrEmptyCorpus is returned by Fit when no documents are supplied.
	ErrEmptyCorpus = errors.New("tfidf: empty corpus")

	// ErrUntrainedModel is returned when similarity is requested from a
	// space that was never fit or holds no documents.
	ErrUntrainedModel = errors.New("tfidf: similarity model is empty or has not been fit")
)

// Config controls vocabulary construction.
type Config struct {
	// MaxFeatures caps the vocabulary at the most frequent terms across the corpus.
	// Default: 500. Zero or negative means no cap.
	MaxFeatures int `json:"max_features"`

	// MinN and MaxN bound the n-gram range.
	// Default: 1 and 2 (unigrams and bigrams).
	MinN int `json:"min_n"`
	MaxN int `json:"max_n"`
}

// DefaultConfig returns the vocabulary settings used for catalog matching.
func DefaultConfig() Config {
	return Config{
		MaxFeatures: 500,
		MinN:        1,
		MaxN:        2,
	}
}

// entry is one non-zero coordinate of a sparse row.
type entry struct {
	col    int
	weight float64
}

// Space is a fitted TF-IDF model plus its similarity matrix.
type Space struct {
	vocabulary []string
	index      map[string]int
	idf        []float64
	rows       [][]entry
	similarity [][]float64
}

// Fit builds the vocabulary, vectors, and similarity matrix for docs.
// Document order fixes row order. Identical input always yields an
// identical Space.
func Fit(docs []string, cfg Config) (*Space, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	if cfg.MinN <= 0 {
		cfg.MinN = 1
	}
	if cfg.MaxN < cfg.MinN {
		cfg.MaxN = cfg.MinN
	}

	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		terms := Analyze(doc, cfg.MinN, cfg.MaxN)
		c := make(map[string]int, len(terms))
		for _, t := range terms {
			c[t]++
		}
		for t, n := range c {
			totals[t] += n
			docFreq[t]++
		}
		counts[i] = c
	}

	vocab := selectFeatures(totals, cfg.MaxFeatures)
	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, t := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	rows := make([][]entry, len(docs))
	for i, c := range counts {
		rows[i] = buildRow(c, index, idf)
	}

	return &Space{
		vocabulary: vocab,
		index:      index,
		idf:        idf,
		rows:       rows,
		similarity: cosineMatrix(rows),
	}, nil
}

// selectFeatures keeps the maxFeatures most frequent terms (ties broken
// alphabetically) and returns them in alphabetical order.
func selectFeatures(totals map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(totals))
	for t := range totals {
		terms = append(terms, t)
	}

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(a, b int) bool {
			if totals[terms[a]] != totals[terms[b]] {
				return totals[terms[a]] > totals[terms[b]]
			}
			return terms[a] < terms[b]
		})
		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)
	return terms
}

// buildRow weights the in-vocabulary terms of one document and
// L2-normalizes the result. Entries are ordered by column.
func buildRow(counts map[string]int, index map[string]int, idf []float64) []entry {
	row := make([]entry, 0, len(counts))
	var norm float64
	for t, c := range counts {
		col, ok := index[t]
		if !ok {
			continue
		}
		w := float64(c) * idf[col]
		row = append(row, entry{col: col, weight: w})
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range row {
			row[i].weight /= norm
		}
	}

	sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
	return row
}

// cosineMatrix fills the upper triangle and mirrors it, so the result is
// exactly symmetric. The diagonal is pinned to 1.0, including rows whose
// document produced no vocabulary terms.
func cosineMatrix(rows [][]entry) [][]float64 {
	n := len(rows)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		sim[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			v := dot(rows[i], rows[j])
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			sim[i][j] = v
			sim[j][i] = v
		}
	}
	return sim
}

// dot merges two column-ordered sparse rows.
func dot(a, b []entry) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].col == b[j].col:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].col < b[j].col:
			i++
		default:
			j++
		}
	}
	return sum
}

// Len returns the number of documents in the space.
func (s *Space) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// VocabularySize returns the number of retained terms.
func (s *Space) VocabularySize() int {
	if s == nil {
		return 0
	}
	return len(s.vocabulary)
}

// Vocabulary returns a copy of the retained terms in column order.
func (s *Space) Vocabulary() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.vocabulary))
	copy(out, s.vocabulary)
	return out
}

// Vector returns the non-zero weights of document i keyed by term.
func (s *Space) Vector(i int) (map[string]float64, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(s.rows[i]))
	for _, e := range s.rows[i] {
		out[s.vocabulary[e.col]] = e.weight
	}
	return out, nil
}

// Similarity returns the cosine similarity between documents i and j.
func (s *Space) Similarity(i, j int) (float64, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	if err := s.check(j); err != nil {
		return 0, err
	}
	return s.similarity[i][j], nil
}

// Row returns a copy of the similarity row for document i.
func (s *Space) Row(i int) ([]float64, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.similarity[i]))
	copy(out, s.similarity[i])
	return out, nil
}

// TopMean returns the mean of the k largest values in row i, self-similarity
// included. When the space holds fewer than k documents, all values are used.
func (s *Space) TopMean(i, k int) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("tfidf: top-k must be positive, got %d", k)
	}
	row, err := s.Row(i)
	if err != nil {
		return 0, err
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(row)))
	if k > len(row) {
		k = len(row)
	}

	var sum float64
	for _, v := range row[:k] {
		sum += v
	}
	return sum / float64(k), nil
}

func (s *Space) check(i int) error {
	if s == nil || len(s.similarity) == 0 {
		return ErrUntrainedModel
	}
	if i < 0 || i >= len(s.similarity) {
		return fmt.Errorf("tfidf: document index %d out of range [0,%d)", i, len(s.similarity))
	}
	return nil
}

// Analyze lower-cases text, extracts tokens of two or more word characters,
// drops English stop words, and returns the n-grams for minN..maxN.
func Analyze(text string, minN, maxN int) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	kept := tokens[:0]
	for _, t := range tokens {
		if !IsStopWord(t) {
			kept = append(kept, t)
		}
	}

	var terms []string
	if minN <= 1 {
		terms = append(terms, kept...)
		minN = 2
	}
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(kept); i++ {
			terms = append(terms, strings.Join(kept[i:i+n], " "))
		}
	}
	return terms
}

// Tokenize splits lower-cased text into runs of word characters (letters,
// digits, marks, underscore) and keeps runs of at least two runes.
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var b strings.Builder
	runes := 0
	flush := func() {
		if runes >= 2 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
		runes = 0
	}

	for _, r := range text {
		if isWordRune(r) {
			b.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
