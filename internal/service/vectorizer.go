package service

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// tfidfVectorizer builds a term-frequency/inverse-document-frequency vector
// space over a fixed document corpus. It uses unigrams and bigrams, removes
// English stop words, and keeps at most maxFeatures terms chosen by corpus
// frequency. Vectors are L2-normalized, so cosine similarity between two
// transformed vectors reduces to their dot product.
type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// newTFIDFVectorizer fits the vector space on the provided documents.
func newTFIDFVectorizer(documents []string, maxFeatures int) *tfidfVectorizer {
	type termStats struct {
		corpusCount   int
		documentCount int
	}
	stats := make(map[string]*termStats)

	for _, doc := range documents {
		terms := extractTerms(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			st, ok := stats[term]
			if !ok {
				st = &termStats{}
				stats[term] = st
			}
			st.corpusCount++
			if _, dup := seen[term]; !dup {
				st.documentCount++
				seen[term] = struct{}{}
			}
		}
	}

	// Keep the most frequent terms; ties resolve alphabetically so the
	// vocabulary is deterministic.
	terms := make([]string, 0, len(stats))
	for term := range stats {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		a, b := stats[terms[i]], stats[terms[j]]
		if a.corpusCount != b.corpusCount {
			return a.corpusCount > b.corpusCount
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &tfidfVectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	totalDocs := float64(len(documents))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smooth idf keeps terms present in every document from zeroing out.
		v.idf[i] = math.Log((1+totalDocs)/(1+float64(stats[term].documentCount))) + 1
	}
	return v
}

// transform projects a document into the fitted space as an L2-normalized
// tf-idf vector. A document sharing no vocabulary terms yields the zero
// vector.
func (v *tfidfVectorizer) transform(document string) []float64 {
	vector := make([]float64, len(v.idf))
	for _, term := range extractTerms(document) {
		if index, ok := v.vocabulary[term]; ok {
			vector[index] += v.idf[index]
		}
	}
	if norm := floats.Norm(vector, 2); norm > 0 {
		floats.Scale(1/norm, vector)
	}
	return vector
}

// cosineSimilarity between two transformed vectors. Both are normalized, so
// this is a plain dot product.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}

// extractTerms lowercases, tokenizes, drops stop words and produces unigrams
// followed by bigrams.
func extractTerms(document string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(document), -1)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := englishStopWords[token]; stop {
			continue
		}
		words = append(words, token)
	}

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}
