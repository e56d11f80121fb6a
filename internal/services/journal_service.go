package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/forms"
	"travelbook/internal/repositories"
	"travelbook/internal/storage"
	"travelbook/internal/utils"

	"github.com/jinzhu/now"
)

// RecentJournalSlots is the size of the journal grid.
const RecentJournalSlots = 6

type JournalService struct {
	Journals  repositories.JournalRepository
	Media     storage.MediaStore
	RequestID string
	Now       Clock
}

type placeholder struct {
	title    string
	location string
	daysAgo  int
	cover    string
}

var placeholders = []placeholder{
	{"Journey to Alaska", "Alaska, USA", 20, "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=400&q=80"},
	{"Lanterns of Hoi An", "Hoi An, Vietnam", 34, "https://images.unsplash.com/photo-1528127269322-539801943592?auto=format&fit=crop&w=400&q=80"},
	{"Fjords by Ferry", "Geiranger, Norway", 51, "https://images.unsplash.com/photo-1507272931001-fc06c17e4f43?auto=format&fit=crop&w=400&q=80"},
	{"Spice Markets", "Marrakesh, Morocco", 77, "https://images.unsplash.com/photo-1489749798305-4fea3ae63d43?auto=format&fit=crop&w=400&q=80"},
	{"Island Hopping", "Cyclades, Greece", 96, "https://images.unsplash.com/photo-1533105079780-92b9be482077?auto=format&fit=crop&w=400&q=80"},
	{"Road to Uluru", "Northern Territory, Australia", 130, "https://images.unsplash.com/photo-1529108190281-9a4f620bc2d8?auto=format&fit=crop&w=400&q=80"},
}

// Create validates the entry, stores the optional cover and persists the
// journal dated today. Nothing is kept when any step fails.
func (s JournalService) Create(ctx context.Context, f *forms.JournalForm, cover *multipart.FileHeader) (models.Journal, error) {
	errs := f.Validate()

	var upload *storage.Upload
	if cover != nil {
		u, err := s.Media.Inspect(cover)
		switch {
		case err == nil:
			upload = &u
		case errors.Is(err, storage.ErrNotImage), errors.Is(err, storage.ErrTooLarge), errors.Is(err, storage.ErrEmpty):
			errs.Add("cover", capitalize(err.Error())+".")
		default:
			return models.Journal{}, domain.InternalError{Msg: "could not read cover", Err: err}
		}
	}
	if !errs.Empty() {
		return models.Journal{}, errs.Err()
	}

	j := models.Journal{
		Title:       f.Title,
		Description: f.Description,
		Location:    f.Location,
		Date:        now.With(s.Now.now()).BeginningOfDay(),
	}
	if upload != nil {
		rel, err := s.Media.Write(storage.CoverNamespace, *upload)
		if err != nil {
			return models.Journal{}, domain.InternalError{Msg: "could not store cover", Err: err}
		}
		j.Cover = rel
	}

	if err := s.Journals.Create(ctx, &j); err != nil {
		if rmErr := s.Media.Remove(j.Cover); rmErr != nil {
			utils.LogEvent(s.RequestID, "journal", "cleanup_failed", "cover", j.Cover, "err", rmErr)
		}
		return models.Journal{}, domain.InternalError{Msg: "could not save journal", Err: err}
	}
	utils.LogEvent(s.RequestID, "journal", "create", "journal_id", j.ID, "has_cover", j.Cover != "")
	return j, nil
}

func (s JournalService) Get(ctx context.Context, id int64) (models.Journal, error) {
	if id <= 0 {
		return models.Journal{}, domain.NotFoundError{Resource: "journal"}
	}
	return s.Journals.GetByID(ctx, id)
}

// CoverURL is the public address of the journal cover, empty without one.
func (s JournalService) CoverURL(j models.Journal) string {
	return s.Media.URL(j.Cover)
}

// RecentCards returns the newest journals, padded with placeholder cards
// until the grid is full.
func (s JournalService) RecentCards(ctx context.Context) ([]models.JournalCard, error) {
	journals, err := s.Journals.ListRecent(ctx, RecentJournalSlots)
	if err != nil {
		return nil, err
	}
	cards := make([]models.JournalCard, 0, RecentJournalSlots)
	for _, j := range journals {
		cards = append(cards, models.JournalCard{
			ID:       j.ID,
			Title:    j.Title,
			Location: j.Location,
			Date:     j.Date,
			CoverURL: s.CoverURL(j),
		})
	}
	return append(cards, placeholderCards(s.Now.now(), RecentJournalSlots-len(cards))...), nil
}

func placeholderCards(at time.Time, n int) []models.JournalCard {
	if n <= 0 {
		return nil
	}
	n = min(n, len(placeholders))
	today := now.With(at).BeginningOfDay()
	out := make([]models.JournalCard, 0, n)
	for _, p := range placeholders[:n] {
		out = append(out, models.JournalCard{
			Title:       p.title,
			Location:    p.location,
			Date:        today.AddDate(0, 0, -p.daysAgo),
			CoverURL:    p.cover,
			Placeholder: true,
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
