package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"buraq/internal/model"
)

// Attribute scoring weights. The ranker tests pin this arithmetic;
// change these and the tests together.
const (
	scoreFeatured        = 10.0
	scoreCategoryMatch   = 50.0
	scoreLocationContain = 30.0
	scoreLocationReverse = 20.0
	scoreGenderMatch     = 15.0
	scorePerTagMatch     = 5.0
	scoreEndorsementCap  = 10.0
	scoreRecencyBonus    = 5.0

	recencyWindow = 30 * 24 * time.Hour

	// trusted-provider phrase appears in the searchable text above this
	// endorsement count
	trustedEndorsements = 10

	embedConcurrency = 8
)

// RankContext is the query context a candidate set is scored against
type RankContext struct {
	CategoryID       string
	Location         string
	GenderPreference model.GenderPreference
	Tags             []string
	Query            string
	SearchKeywords   []string
}

// scoredCandidate pairs a listing with its computed score for sorting
type scoredCandidate struct {
	listing model.Listing
	score   float64
}

// Ranker scores and orders candidate listings. Semantic similarity is the
// primary strategy when a free-text query is present and the embedding
// service is up; attribute scoring is the fallback and the no-query path.
type Ranker struct {
	ai AIClient
}

// NewRanker creates a new ranker
func NewRanker(ai AIClient) *Ranker {
	return &Ranker{ai: ai}
}

// Rank orders candidates and truncates to topK. Candidates are expected to be
// pre-filtered to approved status by the orchestrator. Deterministic given
// identical inputs and identical embedding responses.
func (r *Ranker) Rank(ctx context.Context, candidates []model.Listing, rctx RankContext, topK int) []model.Listing {
	if len(candidates) == 0 || topK <= 0 {
		return []model.Listing{}
	}

	if rctx.Query != "" && r.ai != nil && r.ai.IsEnabled() {
		ranked, err := r.rankSemantic(ctx, candidates, rctx, topK)
		if err == nil {
			return ranked
		}
		log.Printf("Semantic ranking failed: %v, falling back to attribute scoring", err)
	}

	return r.rankByAttributes(candidates, rctx, topK)
}

// rankByAttributes applies the additive weighted score and a stable sort, so
// ties preserve the seed order the store returned.
func (r *Ranker) rankByAttributes(candidates []model.Listing, rctx RankContext, topK int) []model.Listing {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, listing := range candidates {
		scored = append(scored, scoredCandidate{
			listing: listing,
			score:   scoreListing(listing, rctx),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return truncate(scored, topK)
}

// scoreListing computes the attribute score for one listing
func scoreListing(listing model.Listing, rctx RankContext) float64 {
	score := 0.0

	if listing.IsFeatured {
		score += scoreFeatured
	}

	if rctx.CategoryID != "" && listing.CategoryID == rctx.CategoryID {
		score += scoreCategoryMatch
	}

	if rctx.Location != "" && listing.LocationText != "" {
		locationLower := strings.ToLower(rctx.Location)
		listingLocationLower := strings.ToLower(listing.LocationText)
		if strings.Contains(listingLocationLower, locationLower) {
			score += scoreLocationContain
		} else if strings.Contains(locationLower, listingLocationLower) {
			score += scoreLocationReverse
		}
	}

	if rctx.GenderPreference != "" && listing.GenderOfProvider != nil {
		if *listing.GenderOfProvider == rctx.GenderPreference || *listing.GenderOfProvider == model.GenderMixed {
			score += scoreGenderMatch
		}
	}

	// Tag matches by case-insensitive substring, not exact equality
	if len(rctx.Tags) > 0 {
		for _, tag := range listing.Tags {
			tagLower := strings.ToLower(tag)
			for _, criteriaTag := range rctx.Tags {
				if strings.Contains(tagLower, strings.ToLower(criteriaTag)) {
					score += scorePerTagMatch
					break
				}
			}
		}
	}

	score += math.Min(float64(listing.CommunityEndorsements)/2, scoreEndorsementCap)

	if time.Since(listing.CreatedAt) < recencyWindow {
		score += scoreRecencyBonus
	}

	return score
}

// rankSemantic embeds the enriched query and each candidate's searchable
// text, then orders by cosine similarity. Per-candidate embedding calls run
// concurrently with bounded fan-out; any failure aborts the whole batch so
// the caller can fall back to attribute scoring.
func (r *Ranker) rankSemantic(ctx context.Context, candidates []model.Listing, rctx RankContext, topK int) ([]model.Listing, error) {
	enrichedQuery := rctx.Query
	if len(rctx.SearchKeywords) > 0 {
		enrichedQuery = rctx.Query + " " + strings.Join(rctx.SearchKeywords, " ")
	}

	// texts[0] is the query; texts[i+1] belongs to candidates[i]
	texts := make([]string, len(candidates)+1)
	texts[0] = enrichedQuery
	for i, listing := range candidates {
		texts[i+1] = searchableText(listing)
	}

	vectors := make([][]float32, len(texts))
	sem := make(chan struct{}, embedConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			embeddings, err := r.ai.CreateEmbeddings(ctx, []string{texts[i]})
			if err == nil && len(embeddings) != 1 {
				err = fmt.Errorf("expected 1 embedding, got %d", len(embeddings))
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			vectors[i] = embeddings[0]
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	queryVec := vectors[0]
	scored := make([]scoredCandidate, 0, len(candidates))
	for i, listing := range candidates {
		similarity, err := cosineSimilarity(queryVec, vectors[i+1])
		if err != nil {
			return nil, err
		}
		scored = append(scored, scoredCandidate{listing: listing, score: similarity})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return truncate(scored, topK), nil
}

// searchableText builds the embedding input for a listing, weighting the
// title by repetition and spelling out structured fields as phrases.
func searchableText(listing model.Listing) string {
	parts := []string{
		listing.Title,
		listing.Title,
		listing.Description,
		strings.Join(listing.Tags, " "),
		strings.Join(listing.Certifications, " "),
	}

	if listing.YearsOfExperience != nil {
		parts = append(parts, fmt.Sprintf("%d years experience experienced professional", *listing.YearsOfExperience))
	}
	if listing.GenderOfProvider != nil {
		parts = append(parts, string(*listing.GenderOfProvider))
	}
	if listing.LocationText != "" {
		parts = append(parts, listing.LocationText)
	}
	if listing.PricingMin != nil && listing.PricingMax != nil {
		parts = append(parts, fmt.Sprintf("affordable budget-friendly %g-%g price", *listing.PricingMin, *listing.PricingMax))
	}
	if listing.ResponseTime != nil {
		parts = append(parts, *listing.ResponseTime)
	}
	if listing.CommunityEndorsements > trustedEndorsements {
		parts = append(parts, "trusted reliable highly rated")
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// cosineSimilarity computes the cosine of the angle between two vectors
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have the same length (%d vs %d)", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func truncate(scored []scoredCandidate, topK int) []model.Listing {
	if topK > len(scored) {
		topK = len(scored)
	}
	results := make([]model.Listing, 0, topK)
	for _, sc := range scored[:topK] {
		results = append(results, sc.listing)
	}
	return results
}
