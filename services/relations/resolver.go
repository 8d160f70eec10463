// Package relations resolves the jsonb id-array columns (genres, actors,
// directors) into display names and computes the bounded "related items"
// lists shown on detail pages.
package relations

import (
	"fmt"

	"elousia-backend/models"

	"gorm.io/gorm"
)

type Resolver struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// resolveNames batch looks up display names for a set of ids in one query.
// Unknown ids are silently dropped and the name order follows the reference
// table, not the input list. An empty input issues no query at all.
func (r *Resolver) resolveNames(table string, ids models.IDList) ([]string, error) {
	names := []string{}
	if len(ids) == 0 {
		return names, nil
	}
	err := r.db.Table(table).Where("id IN ?", []int64(ids)).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Resolver) GenreNames(ids models.IDList) ([]string, error) {
	return r.resolveNames("movie_categories", ids)
}

func (r *Resolver) ActorNames(ids models.IDList) ([]string, error) {
	return r.resolveNames("actors", ids)
}

func (r *Resolver) DirectorNames(ids models.IDList) ([]string, error) {
	return r.resolveNames("directors", ids)
}

// LanguageName returns nil when no language is referenced or the id is
// dangling.
func (r *Resolver) LanguageName(id int64) (*string, error) {
	return r.lookupName("languages", id)
}

func (r *Resolver) CategoryName(id int64) (*string, error) {
	return r.lookupName("movie_categories", id)
}

func (r *Resolver) lookupName(table string, id int64) (*string, error) {
	if id == 0 {
		return nil, nil
	}
	var names []string
	err := r.db.Table(table).Where("id = ?", id).Limit(1).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return &names[0], nil
}

// jsonIDLiteral builds the jsonb containment literal for one genre id.
// Genre arrays store ids as strings, so the literal is e.g. ["3"].
func jsonIDLiteral(id int64) string {
	return fmt.Sprintf(`["%d"]`, id)
}

// genreMatch fans the id set out into per-id containment checks combined
// with OR: any shared genre qualifies.
func (r *Resolver) genreMatch(ids models.IDList) *gorm.DB {
	cond := r.db.Where("genres @> ?", jsonIDLiteral(ids[0]))
	for _, id := range ids[1:] {
		cond = cond.Or("genres @> ?", jsonIDLiteral(id))
	}
	return cond
}

// RelatedMovies returns up to limit other active movies sharing at least one
// genre with the given set. An empty genre set yields no related items.
func (r *Resolver) RelatedMovies(excludeID int64, genreIDs models.IDList, limit int) ([]models.MovieCard, error) {
	related := []models.MovieCard{}
	if len(genreIDs) == 0 {
		return related, nil
	}
	err := r.db.Model(&models.Movie{}).
		Where("status = ?", models.MovieActive).
		Where("id <> ?", excludeID).
		Where(r.genreMatch(genreIDs)).
		Order("id DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

func (r *Resolver) RelatedSeries(excludeID int64, genreIDs models.IDList, limit int) ([]models.SeriesCard, error) {
	related := []models.SeriesCard{}
	if len(genreIDs) == 0 {
		return related, nil
	}
	err := r.db.Model(&models.Series{}).
		Where("status = ?", models.StatusActive).
		Where("id <> ?", excludeID).
		Where(r.genreMatch(genreIDs)).
		Order("id DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

// RelatedEvents matches on the single category column, exact equality.
func (r *Resolver) RelatedEvents(excludeID int64, categoryID int64, limit int) ([]models.EventCard, error) {
	related := []models.EventCard{}
	if categoryID == 0 {
		return related, nil
	}
	err := r.db.Model(&models.Event{}).
		Where("status = ?", models.StatusActive).
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeID).
		Order("id DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

func (r *Resolver) RelatedRadios(excludeID int64, categoryID int64, limit int) ([]models.RadioCard, error) {
	related := []models.RadioCard{}
	if categoryID == 0 {
		return related, nil
	}
	err := r.db.Model(&models.Radio{}).
		Where("status = ?", models.StatusActive).
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeID).
		Order("id DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

func (r *Resolver) RelatedLiveTVs(excludeID int64, categoryID int64, limit int) ([]models.LiveTVCard, error) {
	related := []models.LiveTVCard{}
	if categoryID == 0 {
		return related, nil
	}
	err := r.db.Model(&models.LiveTV{}).
		Where("status = ?", models.StatusActive).
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeID).
		Order("id DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}
