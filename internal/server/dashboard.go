package server

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/web"
)

// newDashboardData orders genres by count and years newest first.
func newDashboardData(stats model.BookStats) web.DashboardData {
	genres := slices.Clone(stats.GenreDistribution)
	slices.SortStableFunc(genres, func(a, b model.GenreCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	years := slices.Clone(stats.BooksPerYear)
	slices.SortFunc(years, func(a, b model.YearCount) int {
		return cmp.Compare(b.Year, a.Year)
	})
	return web.DashboardData{Stats: stats, Genres: genres, Years: years}
}

func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Stats(s.apiContext(r))
	if err != nil {
		log.Error().Err(err).Msg("error retrieving stats")
		s.renderError(w, r, err, "/dashboard")
		return
	}
	s.render(w, r, http.StatusOK, web.DashboardPage(s.newPage(w, r, "Dashboard"), newDashboardData(stats)))
}
