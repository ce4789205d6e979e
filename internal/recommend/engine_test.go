// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/similarity"
)

// recordingResolver returns a poster derived from the id and tracks calls and
// peak concurrency.
type recordingResolver struct {
	maxDelay time.Duration
	calls    atomic.Int64
	inFlight atomic.Int64
	peak     atomic.Int64

	mu  sync.Mutex
	ids []int64
}

func (r *recordingResolver) GetOrFetch(_ context.Context, id int64) models.Metadata {
	r.calls.Add(1)
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}

	r.mu.Lock()
	r.ids = append(r.ids, id)
	r.mu.Unlock()

	if r.maxDelay > 0 {
		time.Sleep(time.Duration(rand.Int64N(int64(r.maxDelay))))
	}
	return models.Metadata{
		PosterURL: fmt.Sprintf("https://img.test/%d.jpg", id),
		Overview:  fmt.Sprintf("overview %d", id),
		Rating:    models.KnownRating(float64(id)),
	}
}

func sevenMovieIndex(t *testing.T) *similarity.Index {
	t.Helper()

	movies := []models.Movie{
		{CatalogID: 1, Title: "A"},
		{CatalogID: 2, Title: "B"},
		{CatalogID: 3, Title: "C"},
		{CatalogID: 4, Title: "D"},
		{CatalogID: 5, Title: "E"},
		{CatalogID: 6, Title: "F"},
		{CatalogID: 7, Title: "G"},
	}
	scores := [][]float64{
		{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.1},
		{0.9, 1.0, 0.2, 0.2, 0.2, 0.2, 0.2},
		{0.8, 0.2, 1.0, 0.3, 0.3, 0.3, 0.3},
		{0.7, 0.2, 0.3, 1.0, 0.4, 0.4, 0.4},
		{0.6, 0.2, 0.3, 0.4, 1.0, 0.5, 0.5},
		{0.5, 0.2, 0.3, 0.4, 0.5, 1.0, 0.6},
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 1.0},
	}

	idx, err := similarity.NewIndex(movies, scores)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return idx
}

func newTestEngine(t *testing.T, resolver Resolver) *Engine {
	t.Helper()
	engine, err := NewEngine(sevenMovieIndex(t), resolver, DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func recTitles(recs []models.Recommendation) []string {
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles
}

func TestNewEngine_Validation(t *testing.T) {
	idx := sevenMovieIndex(t)
	resolver := &recordingResolver{}

	tests := []struct {
		name     string
		index    *similarity.Index
		resolver Resolver
		cfg      *Config
		wantErr  bool
	}{
		{"defaults", idx, resolver, nil, false},
		{"custom", idx, resolver, &Config{TopK: 3, Workers: 2}, false},
		{"nil index", nil, resolver, nil, true},
		{"nil resolver", idx, nil, nil, true},
		{"zero top k", idx, resolver, &Config{TopK: 0, Workers: 5}, true},
		{"zero workers", idx, resolver, &Config{TopK: 5, Workers: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.index, tt.resolver, tt.cfg, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommend_RankOrder(t *testing.T) {
	resolver := &recordingResolver{}
	engine := newTestEngine(t, resolver)

	recs := engine.Recommend(context.Background(), "A")

	want := []string{"B", "C", "D", "E", "F"}
	got := recTitles(recs)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Recommend(A) = %v, want %v", got, want)
	}
	for i, rec := range recs {
		wantID := int64(i + 2)
		if rec.CatalogID != wantID {
			t.Errorf("recs[%d].CatalogID = %d, want %d", i, rec.CatalogID, wantID)
		}
		if rec.PosterURL != fmt.Sprintf("https://img.test/%d.jpg", wantID) {
			t.Errorf("recs[%d] carries metadata of another movie: %q", i, rec.PosterURL)
		}
	}
	if n := resolver.calls.Load(); n != 5 {
		t.Errorf("resolver calls = %d, want 5", n)
	}
}

func TestRecommend_OrderIndependentOfLatency(t *testing.T) {
	resolver := &recordingResolver{maxDelay: 20 * time.Millisecond}
	engine := newTestEngine(t, resolver)

	want := "B,C,D,E,F"
	for i := 0; i < 10; i++ {
		if got := strings.Join(recTitles(engine.Recommend(context.Background(), "A")), ","); got != want {
			t.Fatalf("run %d: Recommend(A) = %s, want %s", i, got, want)
		}
	}
}

func TestRecommend_UnknownTitleMakesNoLookups(t *testing.T) {
	resolver := &recordingResolver{}
	engine := newTestEngine(t, resolver)

	for _, title := range []string{"Unknown Movie", "", "a"} {
		if recs := engine.Recommend(context.Background(), title); len(recs) != 0 {
			t.Errorf("Recommend(%q) = %v, want empty", title, recs)
		}
	}
	if n := resolver.calls.Load(); n != 0 {
		t.Errorf("resolver calls = %d, want 0", n)
	}
	if stats := engine.Stats(); stats.NotFound != 3 || stats.Requests != 3 {
		t.Errorf("Stats() = %+v, want 3 requests, 3 not found", stats)
	}
}

func TestRecommend_BoundedConcurrency(t *testing.T) {
	idx := sevenMovieIndex(t)
	resolver := &recordingResolver{maxDelay: 10 * time.Millisecond}
	engine, err := NewEngine(idx, resolver, &Config{TopK: 6, Workers: 2}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	recs := engine.Recommend(context.Background(), "A")
	if len(recs) != 6 {
		t.Fatalf("len(recs) = %d, want 6", len(recs))
	}
	if peak := resolver.peak.Load(); peak > 2 {
		t.Errorf("peak concurrent lookups = %d, want <= 2", peak)
	}
}

func TestRecommend_DefaultWorkersBound(t *testing.T) {
	resolver := &recordingResolver{maxDelay: 5 * time.Millisecond}
	engine := newTestEngine(t, resolver)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine.Recommend(context.Background(), "A")
		}()
	}
	wg.Wait()

	// Four concurrent requests, each bounded to five lookups.
	if peak := resolver.peak.Load(); peak > 4*DefaultWorkers {
		t.Errorf("peak concurrent lookups = %d, want <= %d", peak, 4*DefaultWorkers)
	}
}

func TestRecommend_DegradedPassesThrough(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, id int64) models.Metadata {
		if id == 4 {
			return models.DegradedMetadata()
		}
		return models.Metadata{Overview: "ok", Rating: models.UnknownRating()}
	})
	engine := newTestEngine(t, resolver)

	recs := engine.Recommend(context.Background(), "A")
	if len(recs) != 5 {
		t.Fatalf("len(recs) = %d, want 5", len(recs))
	}
	if recs[2].Title != "D" || recs[2].Metadata != models.DegradedMetadata() {
		t.Errorf("recs[2] = %+v, want D with degraded metadata", recs[2])
	}
	for i, rec := range recs {
		if i != 2 && rec.IsDegraded() {
			t.Errorf("recs[%d] unexpectedly degraded", i)
		}
	}
}

type resolverFunc func(ctx context.Context, id int64) models.Metadata

func (f resolverFunc) GetOrFetch(ctx context.Context, id int64) models.Metadata {
	return f(ctx, id)
}

func TestEngine_TitlesAndKnown(t *testing.T) {
	engine := newTestEngine(t, &recordingResolver{})

	if got := strings.Join(engine.Titles(), ""); got != "ABCDEFG" {
		t.Errorf("Titles() = %s, want ABCDEFG", got)
	}
	if !engine.Known("C") {
		t.Error("Known(C) = false, want true")
	}
	if engine.Known("Z") {
		t.Error("Known(Z) = true, want false")
	}
	if got := engine.Stats().Movies; got != 7 {
		t.Errorf("Stats().Movies = %d, want 7", got)
	}
}

// TestRecommend_ThroughCacheAndCatalog wires the engine to a real metadata
// cache and catalog client backed by a fake TMDB server.
func TestRecommend_ThroughCacheAndCatalog(t *testing.T) {
	var hits sync.Map
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if _, err := fmt.Sscanf(r.URL.Path, "/3/movie/%d", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		counter, _ := hits.LoadOrStore(id, new(atomic.Int64))
		counter.(*atomic.Int64).Add(1)

		if id == 5 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, fmt.Sprintf(`{"poster_path": "/p%d.jpg", "overview": "movie %d", "vote_average": 7.5}`, id, id))
	}))
	t.Cleanup(server.Close)

	client := catalog.NewClient(&config.CatalogConfig{
		BaseURL:           server.URL + "/3",
		ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
		APIKey:            "test-key",
		Language:          "en-US",
		Timeout:           2 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             100,
		MaxRetries:        0,
		RetryBaseDelay:    time.Millisecond,
		ListWorkers:       5,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  100,
			FailureRatio: 0.9,
		},
	})
	metadataCache := cache.NewMetadataCache(cache.NewMemoryStore(), client)

	engine, err := NewEngine(sevenMovieIndex(t), metadataCache, DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	first := engine.Recommend(context.Background(), "A")
	second := engine.Recommend(context.Background(), "A")

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("lengths = %d, %d, want 5, 5", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("recs[%d] differ between calls: %+v vs %+v", i, first[i], second[i])
		}
	}

	if got := first[0].PosterURL; got != "https://image.tmdb.org/t/p/w500/p2.jpg" {
		t.Errorf("recs[0].PosterURL = %q", got)
	}
	if rating, ok := first[0].Rating.Value(); !ok || rating != 7.5 {
		t.Errorf("recs[0].Rating = %v, want 7.5", first[0].Rating)
	}
	if first[3].Metadata != models.DegradedMetadata() {
		t.Errorf("recs[3] (E) = %+v, want degraded", first[3].Metadata)
	}

	for id := int64(2); id <= 6; id++ {
		counter, ok := hits.Load(id)
		if !ok {
			t.Errorf("movie %d never fetched", id)
			continue
		}
		if n := counter.(*atomic.Int64).Load(); n != 1 {
			t.Errorf("movie %d fetched %d times, want 1", id, n)
		}
	}
	if metadataCache.Len() != 5 {
		t.Errorf("cache size = %d, want 5", metadataCache.Len())
	}
}
