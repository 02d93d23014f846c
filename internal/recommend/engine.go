// Package recommend scores catalog movies for a user from everyone's
// personal movie lists: users who share a movie with you are peers, and
// whatever else those peers rated becomes a candidate.
package recommend

import (
	"sort"

	"github.com/irankiai/cinema-admin/internal/model"
)

// ScoredMovie is a candidate with its accumulated score. A movie reachable
// through several (seed, peer) paths accumulates one rating contribution per
// path.
type ScoredMovie struct {
	Movie model.Movie `json:"movie"`
	Score int         `json:"score"`
}

// Recommend runs the user-based co-occurrence pass over all personal
// entries. genreFilter is an allow-list: empty admits everything, otherwise
// any overlap with the movie's genres qualifies. Candidates already on the
// user's own list are excluded, and candidates whose movie id is missing
// from the catalog are dropped.
func Recommend(userID uint, entries []model.PersonalMovie, catalog []model.Movie, genreFilter []uint) []ScoredMovie {
	mine := make([]model.PersonalMovie, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			mine = append(mine, e)
		}
	}
	if len(mine) == 0 {
		return nil
	}

	byID := make(map[uint]model.Movie, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}

	owned := make(map[uint]bool, len(mine))
	for _, e := range mine {
		owned[e.MovieID] = true
	}

	filter := make(map[uint]bool, len(genreFilter))
	for _, g := range genreFilter {
		filter[g] = true
	}

	// First entry wins when a (user, movie) pair appears more than once.
	ratings := make(map[[2]uint]int, len(entries))
	for _, e := range entries {
		key := [2]uint{e.UserID, e.MovieID}
		if _, ok := ratings[key]; !ok {
			ratings[key] = e.Rating
		}
	}

	scores := make(map[uint]int)
	var order []uint

	for _, seed := range mine {
		for _, peer := range peersOf(userID, seed.MovieID, entries) {
			for _, e := range entries {
				if e.UserID != peer || e.MovieID == seed.MovieID {
					continue
				}
				movie, ok := byID[e.MovieID]
				if !ok {
					continue
				}
				if !genreMatch(movie.GenreIDs, filter) {
					continue
				}
				if owned[movie.ID] {
					continue
				}
				if _, seen := scores[movie.ID]; !seen {
					order = append(order, movie.ID)
				}
				scores[movie.ID] += ratings[[2]uint{peer, movie.ID}]
			}
		}
	}

	out := make([]ScoredMovie, 0, len(order))
	for _, id := range order {
		out = append(out, ScoredMovie{Movie: byID[id], Score: scores[id]})
	}
	// Stable keeps encounter order on ties so results are reproducible.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// peersOf returns, in encounter order, the distinct other users holding an
// entry for the given movie.
func peersOf(userID, movieID uint, entries []model.PersonalMovie) []uint {
	seen := make(map[uint]bool)
	var peers []uint
	for _, e := range entries {
		if e.UserID == userID || e.MovieID != movieID {
			continue
		}
		if !seen[e.UserID] {
			seen[e.UserID] = true
			peers = append(peers, e.UserID)
		}
	}
	return peers
}

func genreMatch(genreIDs []uint, filter map[uint]bool) bool {
	if len(filter) == 0 {
		return true
	}
	for _, g := range genreIDs {
		if filter[g] {
			return true
		}
	}
	return false
}
