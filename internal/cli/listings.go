package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/services"
	"github.com/dustin/go-humanize"
)

// Feed prints every listing, newest first.
func (a *App) Feed(ctx context.Context) error {
	listings, err := a.listings.Feed(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(listings) == 0 {
		fmt.Fprintln(a.out, "No posts yet. Create the first one!")
		return nil
	}
	a.printListings(listings)
	return nil
}

// Search prompts for the search form. Empty answers do not filter.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search text (empty for any)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status: all, lost or found (empty for all)", a.out)
	if err != nil {
		return err
	}
	itemName, err := getSimpleText(a.reader, "Item name contains (empty for any)", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location contains (empty for any)", a.out)
	if err != nil {
		return err
	}

	listings, err := a.listings.Search(ctx, services.SearchQuery{
		Query:    query,
		Status:   services.StatusFilter(status),
		ItemName: itemName,
		Location: location,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	if len(listings) == 0 {
		fmt.Fprintln(a.out, "No items found matching your search.")
		return nil
	}

	fmt.Fprintf(a.out, "Found %s:\n", pluralize(len(listings), "item"))
	a.printListings(listings)
	return nil
}

// Post prompts for the new-post form and publishes the listing.
func (a *App) Post(ctx context.Context) error {
	rawStatus, err := getSimpleText(a.reader, "Status: lost or found", a.out)
	if err != nil {
		return err
	}
	status, err := models.ParseListingStatus(rawStatus)
	if err != nil {
		// Let the service report it together with any other field errors.
		status = models.ListingStatus(rawStatus)
	}

	itemName, err := getSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	place, err := getSimpleText(a.reader, "Exact place", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	imageRef, err := getSimpleText(a.reader, "Image URL (empty for a placeholder)", a.out)
	if err != nil {
		return err
	}

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	listing, err := a.listings.CreateListing(ctx, services.NewListingInput{
		AuthorID:    a.session.UserID,
		AuthorName:  a.session.Username,
		Status:      status,
		ItemName:    itemName,
		Location:    location,
		Place:       place,
		Description: description,
		ImageRef:    imageRef,
	})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Posted %s (%s).\n", listing.ItemName, listing.ID)
	return nil
}

// Show prints a single listing in full.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	l, err := a.listings.Get(ctx, args[0])
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "[%s] %s\n", strings.ToUpper(string(l.Status)), l.ItemName)
	fmt.Fprintf(a.out, "  posted by: %s, %s\n", a.authorName(l), a.ago(l))
	fmt.Fprintf(a.out, "  location:  %s\n", l.Location)
	if l.Place != "" {
		fmt.Fprintf(a.out, "  place:     %s\n", l.Place)
	}
	fmt.Fprintf(a.out, "  image:     %s\n", l.ImageRef)
	if l.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", l.Description)
	}
	return nil
}

func (a *App) printListings(listings []models.Listing) {
	for _, l := range listings {
		fmt.Fprintf(a.out, "%-27s [%-5s] %s\n", l.ID, l.Status, l.ItemName)
		fmt.Fprintf(a.out, "%27s %s, %s by %s\n", "", l.Location, a.ago(l), a.authorName(l))
	}
}

func (a *App) ago(l models.Listing) string {
	return humanize.RelTime(l.CreatedAt, a.now(), "ago", "from now")
}

func (a *App) authorName(l models.Listing) string {
	switch {
	case a.session != nil && l.AuthorID == a.session.UserID:
		return "you"
	case l.AuthorName != "":
		return l.AuthorName
	}
	return l.AuthorID
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
