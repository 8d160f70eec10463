// Package catalog serves the detail, play and download endpoints for
// movies, series and events, enriching rows with resolved names and the
// related-items rail.
package catalog

import (
	"net/http"
	"strconv"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/services/relations"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

const relatedLimit = 10

type movieDetail struct {
	models.Movie
	LanguageName  *string  `json:"language_name"`
	GenreNames    []string `json:"genre_names"`
	ActorNames    []string `json:"actor_names"`
	DirectorNames []string `json:"director_names"`
}

type seriesDetail struct {
	models.Series
	GenreNames []string `json:"genre_names"`
}

type eventDetail struct {
	models.Event
	LanguageName *string `json:"language_name"`
	CategoryName *string `json:"category_name"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// @Summary Title details
// @Description Full row for a movie, series or event with resolved genre/actor/director/language names and up to 10 related titles
// @Tags catalog
// @Produce json
// @Param type path string true "movie, series or event"
// @Param id path int true "Title id"
// @Success 200 {object} map[string]interface{} "status, type, data, related"
// @Failure 400 {object} map[string]interface{} "status: false, message: Invalid type"
// @Failure 404 {object} map[string]interface{} "status: false, message: X not found"
// @Router /details/{type}/{id} [get]
func Details(c *gin.Context) {
	entityType := c.Param("type")

	switch entityType {
	case "movie":
		movieDetails(c)
	case "series":
		seriesDetails(c)
	case "event":
		eventDetails(c)
	default:
		utils.SendError(c, http.StatusBadRequest, "Invalid type")
	}
}

func movieDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var movie models.Movie
	if err := db.DB.First(&movie, "id = ?", id).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Movie not found")
		return
	}

	resolver := relations.New(db.DB)

	languageName, err := resolver.LanguageName(movie.LanguageID)
	if err != nil {
		utils.LogError(err, "Error resolving the language in movieDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the movie details")
		return
	}

	genreNames, err := resolver.GenreNames(movie.Genres)
	if err != nil {
		utils.LogError(err, "Error resolving genres in movieDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the movie details")
		return
	}

	actorNames, err := resolver.ActorNames(movie.Actors)
	if err != nil {
		utils.LogError(err, "Error resolving actors in movieDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the movie details")
		return
	}

	directorNames, err := resolver.DirectorNames(movie.Directors)
	if err != nil {
		utils.LogError(err, "Error resolving directors in movieDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the movie details")
		return
	}

	related, err := resolver.RelatedMovies(movie.ID, movie.Genres, relatedLimit)
	if err != nil {
		utils.LogError(err, "Error loading related movies in movieDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading related movies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"type":   "movie",
		"data": movieDetail{
			Movie:         movie,
			LanguageName:  languageName,
			GenreNames:    genreNames,
			ActorNames:    actorNames,
			DirectorNames: directorNames,
		},
		"related": related,
	})
}

func seriesDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var series models.Series
	if err := db.DB.First(&series, "id = ?", id).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Series not found")
		return
	}

	resolver := relations.New(db.DB)

	genreNames, err := resolver.GenreNames(series.Genres)
	if err != nil {
		utils.LogError(err, "Error resolving genres in seriesDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the series details")
		return
	}

	related, err := resolver.RelatedSeries(series.ID, series.Genres, relatedLimit)
	if err != nil {
		utils.LogError(err, "Error loading related series in seriesDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading related series")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"type":   "series",
		"data": seriesDetail{
			Series:     series,
			GenreNames: genreNames,
		},
		"related": related,
	})
}

func eventDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var event models.Event
	if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}

	resolver := relations.New(db.DB)

	languageName, err := resolver.LanguageName(event.LanguageID)
	if err != nil {
		utils.LogError(err, "Error resolving the language in eventDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the event details")
		return
	}

	categoryName, err := resolver.CategoryName(event.CategoryID)
	if err != nil {
		utils.LogError(err, "Error resolving the category in eventDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the event details")
		return
	}

	related, err := resolver.RelatedEvents(event.ID, event.CategoryID, relatedLimit)
	if err != nil {
		utils.LogError(err, "Error loading related events in eventDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading related events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"type":   "event",
		"data": eventDetail{
			Event:        event,
			LanguageName: languageName,
			CategoryName: categoryName,
		},
		"related": related,
	})
}

// @Summary Playback data for a title
// @Description Like details but keyed as play, with lighter enrichment
// @Tags catalog
// @Produce json
// @Param type path string true "movie, series or event"
// @Param id path int true "Title id"
// @Success 200 {object} map[string]interface{} "status, type, play, related"
// @Failure 400 {object} map[string]interface{} "status: false, message: Invalid type"
// @Failure 404 {object} map[string]interface{} "status: false, message: X not found"
// @Router /play/{type}/{id} [get]
func Play(c *gin.Context) {
	entityType := c.Param("type")
	if entityType != "movie" && entityType != "series" && entityType != "event" {
		utils.SendError(c, http.StatusBadRequest, "Invalid type")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	resolver := relations.New(db.DB)

	switch entityType {
	case "movie":
		var movie models.Movie
		if err := db.DB.First(&movie, "id = ?", id).Error; err != nil {
			utils.SendError(c, http.StatusNotFound, "Movie not found")
			return
		}

		genreNames, err := resolver.GenreNames(movie.Genres)
		if err != nil {
			utils.LogError(err, "Error resolving genres in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading the playback data")
			return
		}

		related, err := resolver.RelatedMovies(movie.ID, movie.Genres, relatedLimit)
		if err != nil {
			utils.LogError(err, "Error loading related movies in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading related movies")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": true,
			"type":   "movie",
			"play": movieDetail{
				Movie:      movie,
				GenreNames: genreNames,
			},
			"related": related,
		})

	case "series":
		var series models.Series
		if err := db.DB.First(&series, "id = ?", id).Error; err != nil {
			utils.SendError(c, http.StatusNotFound, "Series not found")
			return
		}

		genreNames, err := resolver.GenreNames(series.Genres)
		if err != nil {
			utils.LogError(err, "Error resolving genres in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading the playback data")
			return
		}

		related, err := resolver.RelatedSeries(series.ID, series.Genres, relatedLimit)
		if err != nil {
			utils.LogError(err, "Error loading related series in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading related series")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": true,
			"type":   "series",
			"play": seriesDetail{
				Series:     series,
				GenreNames: genreNames,
			},
			"related": related,
		})

	case "event":
		var event models.Event
		if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
			utils.SendError(c, http.StatusNotFound, "Event not found")
			return
		}

		categoryName, err := resolver.CategoryName(event.CategoryID)
		if err != nil {
			utils.LogError(err, "Error resolving the category in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading the playback data")
			return
		}

		related, err := resolver.RelatedEvents(event.ID, event.CategoryID, relatedLimit)
		if err != nil {
			utils.LogError(err, "Error loading related events in Play")
			utils.SendError(c, http.StatusInternalServerError, "Error loading related events")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": true,
			"type":   "event",
			"play": eventDetail{
				Event:        event,
				CategoryName: categoryName,
			},
			"related": related,
		})
	}
}

// @Summary Download link for a title
// @Description Returns the video URL only when the item is flagged downloadable
// @Tags catalog
// @Produce json
// @Param type path string true "movie, series or event"
// @Param id path int true "Title id"
// @Success 200 {object} map[string]interface{} "status, id, type, name, video_url, poster"
// @Router /download/{type}/{id} [get]
func Download(c *gin.Context) {
	entityType := c.Param("type")
	if entityType != "movie" && entityType != "series" && entityType != "event" {
		utils.SendError(c, http.StatusOK, "Invalid type")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var (
		name         string
		videoURL     string
		poster       string
		downloadable int
		found        bool
	)

	switch entityType {
	case "movie":
		var movie models.Movie
		if err := db.DB.First(&movie, "id = ?", id).Error; err == nil {
			name, videoURL, poster, downloadable, found = movie.Name, movie.VideoURL, movie.Poster, movie.Downloadable, true
		}
	case "series":
		var series models.Series
		if err := db.DB.First(&series, "id = ?", id).Error; err == nil {
			name, videoURL, poster, downloadable, found = series.Title, series.VideoURL, series.Poster, series.Downloadable, true
		}
	case "event":
		var event models.Event
		if err := db.DB.First(&event, "id = ?", id).Error; err == nil {
			name, videoURL, poster, downloadable, found = event.Title, event.VideoURL, event.Thumbnail, event.Downloadable, true
		}
	}

	if !found {
		utils.SendError(c, http.StatusOK, "Item not found")
		return
	}

	if downloadable != 1 {
		utils.SendError(c, http.StatusOK, "Download not allowed for this item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    true,
		"id":        id,
		"type":      entityType,
		"name":      name,
		"video_url": videoURL,
		"poster":    poster,
	})
}
