package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

type MovieResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Format   string `json:"format"`
	Duration int    `json:"duration"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := MovieListResponse{Movies: toMovieResponses(movies)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(movies []*domain.Movie) []MovieResponse {
	responses := make([]MovieResponse, 0, len(movies))

	for _, movie := range movies {
		responses = append(responses, MovieResponse{
			ID:       movie.ID,
			Title:    movie.Title,
			Genre:    movie.Genre,
			Format:   movie.Format,
			Duration: movie.Duration,
		})
	}

	return responses
}
