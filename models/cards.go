package models

// Card types are the reduced rows embedded in "related" lists. They only
// carry the display fields the clients render in rails and grids.

type MovieCard struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Poster    string `json:"poster"`
	PosterTV  string `json:"poster_tv"`
	Thumbnail string `json:"thumbnail"`
}

type SeriesCard struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
	Banner string `json:"banner"`
}

type EventCard struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Thumbnail string `json:"thumbnail"`
	Banner    string `json:"banner"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
}

type RadioCard struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	StreamURL   string `json:"stream_url"`
}

type LiveTVCard struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Logo            string `json:"logo"`
	Description     string `json:"description"`
	StreamType      string `json:"stream_type"`
	StreamURL       string `json:"stream_url"`
	BackupStreamURL string `json:"backup_stream_url"`
	ScheduleTime    string `json:"schedule_time"`
}
