package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// stopwords are excluded from lexical similarity; they carry no matching signal.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "this": true, "i": true, "we": true, "you": true,
}

// LexicalSimilarity computes TF-IDF cosine similarity between two documents,
// scaled to 0-100. Both texts are normalized, tokenized into stopword-filtered
// unigrams plus adjacent bigrams, weighted with a smoothed IDF over the
// two-document corpus and compared as L2-normalized vectors. Empty or
// signal-free inputs score 0.
func LexicalSimilarity(textA, textB string) float64 {
	termsA := lexicalTerms(textA)
	termsB := lexicalTerms(textB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	tfA := termCounts(termsA)
	tfB := termCounts(termsB)

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1
	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	seen := make(map[string]bool, len(tfA)+len(tfB))
	vocab := make([]string, 0, len(tfA)+len(tfB))
	for _, tf := range []map[string]int{tfA, tfB} {
		for term := range tf {
			if !seen[term] {
				seen[term] = true
				vocab = append(vocab, term)
			}
		}
	}
	// Fixed summation order keeps repeated calls byte-identical; map
	// iteration order would perturb the floating-point sums.
	sort.Strings(vocab)

	var dot, normA, normB float64
	for _, term := range vocab {
		w := idf(term)
		a := float64(tfA[term]) * w
		b := float64(tfB[term]) * w
		dot += a * b
		normA += a * a
		normB += b * b
	}

	den := math.Sqrt(normA) * math.Sqrt(normB)
	if den == 0 {
		return 0
	}
	return 100 * dot / den
}

// lexicalTerms produces the unigram+bigram term sequence for a document.
func lexicalTerms(text string) []string {
	tokens := strings.Fields(ingestion.NormalizeForComparison(text))

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if stopwords[tok] || len(tok) == 1 {
			continue
		}
		kept = append(kept, tok)
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}
