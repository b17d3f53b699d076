package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/validation"
	"github.com/segmentio/ksuid"
)

const placeholderImageURL = "https://via.placeholder.com/600x400/667eea/FFFFFF?text="

// NewListingInput is the new-post form.
type NewListingInput struct {
	AuthorID    string
	AuthorName  string
	Status      models.ListingStatus
	ItemName    string
	Location    string
	Place       string
	Description string
	ImageRef    string
}

// StatusFilter narrows a search by listing status.
type StatusFilter string

const (
	FilterAll   StatusFilter = "all"
	FilterLost  StatusFilter = "lost"
	FilterFound StatusFilter = "found"
)

// SearchQuery holds the search form. Zero value matches every listing.
type SearchQuery struct {
	Query    string
	Status   StatusFilter
	ItemName string
	Location string
}

// ListingService manages the lost-and-found feed.
type ListingService interface {
	CreateListing(ctx context.Context, in NewListingInput) (models.Listing, error)
	Search(ctx context.Context, q SearchQuery) ([]models.Listing, error)
	Feed(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (models.Listing, error)
	EnsureSeeded(ctx context.Context) error
}

type listingService struct {
	base
	store kv.Store
}

func NewListingService(store kv.Store, opts ...Option) ListingService {
	return &listingService{base: newBase(opts), store: store}
}

func (s *listingService) CreateListing(ctx context.Context, in NewListingInput) (models.Listing, error) {
	verrs := validation.Errors{}
	verrs.Check(validation.Required(in.AuthorID), "authorId", "is required")
	verrs.Check(in.Status.Valid(), "status", models.ErrInvalidStatus.Error())
	verrs.Check(validation.Required(in.ItemName), "itemName", "is required")
	verrs.Check(validation.Required(in.Location), "location", "is required")
	if err := verrs.Err(); err != nil {
		return models.Listing{}, err
	}

	now := s.now()
	id, err := ksuid.NewRandomWithTime(now)
	if err != nil {
		return models.Listing{}, fmt.Errorf("generate listing id: %w", err)
	}

	itemName := strings.TrimSpace(in.ItemName)
	imageRef := strings.TrimSpace(in.ImageRef)
	if imageRef == "" {
		imageRef = placeholderImageURL + url.QueryEscape(itemName)
	}

	listing := models.Listing{
		ID:          id.String(),
		AuthorID:    in.AuthorID,
		AuthorName:  strings.TrimSpace(in.AuthorName),
		Status:      in.Status,
		ItemName:    itemName,
		Location:    strings.TrimSpace(in.Location),
		Place:       strings.TrimSpace(in.Place),
		Description: strings.TrimSpace(in.Description),
		ImageRef:    imageRef,
		CreatedAt:   now,
	}

	err = updateList(ctx, s.store, keyPosts, func(posts []models.Listing) ([]models.Listing, error) {
		return append(posts, listing), nil
	})
	if err != nil {
		return models.Listing{}, err
	}

	s.log.Info(ctx, "listing created", "id", listing.ID, "status", listing.Status, "author", listing.AuthorID)
	return listing, nil
}

// Search returns the listings matching every non-empty criterion of q,
// newest first. Text criteria are trimmed and compared case-insensitively.
func (s *listingService) Search(ctx context.Context, q SearchQuery) ([]models.Listing, error) {
	status := StatusFilter(strings.ToLower(strings.TrimSpace(string(q.Status))))
	switch status {
	case "", FilterAll, FilterLost, FilterFound:
	default:
		return nil, validation.Errors{"status": "must be all, lost or found"}
	}

	query := strings.ToLower(strings.TrimSpace(q.Query))
	itemName := strings.ToLower(strings.TrimSpace(q.ItemName))
	location := strings.ToLower(strings.TrimSpace(q.Location))

	posts, err := loadList[models.Listing](ctx, s.store, keyPosts)
	if err != nil {
		return nil, err
	}

	result := make([]models.Listing, 0, len(posts))
	for _, p := range posts {
		if query != "" &&
			!contains(p.ItemName, query) &&
			!contains(p.Location, query) &&
			!contains(p.Description, query) {
			continue
		}
		if status != "" && status != FilterAll && string(status) != string(p.Status) {
			continue
		}
		if itemName != "" && !contains(p.ItemName, itemName) {
			continue
		}
		if location != "" && !contains(p.Location, location) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *listingService) Feed(ctx context.Context) ([]models.Listing, error) {
	return s.Search(ctx, SearchQuery{})
}

func (s *listingService) Get(ctx context.Context, id string) (models.Listing, error) {
	posts, err := loadList[models.Listing](ctx, s.store, keyPosts)
	if err != nil {
		return models.Listing{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Listing{}, fmt.Errorf("listing %s: %w", id, common.ErrorNotFound)
}

// EnsureSeeded fills an empty feed with the demo listings.
func (s *listingService) EnsureSeeded(ctx context.Context) error {
	seeded, err := seedList(ctx, s.store, keyPosts, func() []models.Listing {
		return models.SeedListings(s.now())
	})
	if err != nil {
		return err
	}
	if seeded {
		s.log.Debug(ctx, "seeded demo listings")
	}
	return nil
}

// contains reports whether lowered needle occurs in s, ignoring case.
func contains(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
