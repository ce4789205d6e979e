// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend turns a movie title into a ranked list of similar movies
// with display metadata.
//
// # Pipeline
//
//  1. Look the title up in the similarity index. Unknown titles end here with
//     an empty result and no network traffic.
//  2. Take the TopK nearest neighbors (5 by default), most similar first.
//  3. Resolve each neighbor's metadata through the Resolver on a bounded pool
//     of Workers goroutines. Neighbor i always lands in result slot i.
//  4. Wait for every lookup, then return in rank order.
//
// Lookup failures never surface as errors: the Resolver hands back the
// degraded tuple, which is returned like any other metadata.
//
// # Usage
//
//	engine, err := recommend.NewEngine(index, metadataCache, recommend.DefaultConfig(), logging.Logger())
//	if err != nil {
//	    return err
//	}
//	recs := engine.Recommend(ctx, "Avatar")
//	if len(recs) == 0 {
//	    // title not recognized
//	}
package recommend
