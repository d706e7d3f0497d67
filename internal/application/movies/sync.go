package movies

import (
	"context"
	"strconv"
	"strings"

	"github.com/cinevault/movies-service/internal/domain"
)

// The external source carries no genre or score data, so synchronized rows
// get fixed placeholders. Known limitation of the source, kept on purpose.
var syncGenres = []string{"Sci-Fi", "Adventure"}

const syncScore = 8.5

// SyncResult summarizes a completed reconciliation pass.
type SyncResult struct {
	Message  string
	Inserted int
	Skipped  int
}

// SyncStarWars reconciles the local catalog against the external film list.
// Insert-only and keyed on title: an existing title is skipped, never
// updated, so re-running after a successful pass inserts nothing new.
// A fetch failure aborts the whole operation with no partial result, and
// the first persistence failure aborts the remaining loop.
func (s *Service) SyncStarWars(ctx context.Context) (SyncResult, error) {
	films, err := s.catalog.FetchFilms(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	res := SyncResult{Message: "movies synchronized successfully"}
	for _, f := range films {
		m := domain.Movie{
			Title:    f.Title,
			Year:     yearOf(f.ReleaseDate),
			Director: f.Director,
			Genres:   syncGenres,
			Score:    syncScore,
		}

		inserted, err := s.repo.CreateIfTitleAbsent(ctx, m)
		if err != nil {
			return SyncResult{}, err
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	return res, nil
}

func yearOf(releaseDate string) int {
	y, _, ok := strings.Cut(releaseDate, "-")
	if !ok {
		y = releaseDate
	}
	n, err := strconv.Atoi(y)
	if err != nil {
		return 0
	}
	return n
}
