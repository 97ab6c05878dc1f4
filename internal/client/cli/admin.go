package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/pagination"
)

var errPermissionDenied = errors.New("permission denied")

type listKind int

const (
	listUsers listKind = iota
	listRoles
	listAssignments
	listMembers
)

// listing is the paged table the navigation commands act on.
type listing struct {
	kind   listKind
	search string
	pager  *pagination.Pager
}

func (a *App) require(p models.Permission) error {
	if a.can(p) {
		return nil
	}
	printlnFn("Permission denied:", string(p), "required")
	return errPermissionDenied
}

// argsOK prints usage unless args has exactly n elements.
func argsOK(args []string, n int, usage string) bool {
	if len(args) == n {
		return true
	}
	printlnFn("Usage:", usage)
	return false
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (a *App) confirm(question string) bool {
	answer, err := getSimpleText(a.reader, question+" (y/N)", os.Stdout)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	printlnFn("Cancelled")
	return false
}

// openListing starts a new paged listing and shows its first page.
func (a *App) openListing(ctx context.Context, kind listKind, args []string) error {
	a.listing = &listing{kind: kind, search: strings.Join(args, " "), pager: pagination.New(pagination.DefaultLimit)}
	return a.showPage(ctx)
}

// Navigate moves through the current listing: next, prev, first, last,
// page <n> and limit <n>.
func (a *App) Navigate(ctx context.Context, cmd string, args []string) error {
	if a.listing == nil {
		printlnFn("Nothing to page through, run users, roles, assignments or members first")
		return nil
	}
	pager := a.listing.pager

	moved := true
	switch cmd {
	case "next":
		moved = pager.Next()
	case "prev":
		moved = pager.Prev()
	case "first":
		pager.First()
	case "last":
		pager.Last()
	case "page", "limit":
		if !argsOK(args, 1, cmd+" <n>") {
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Not a number:", args[0])
			return nil
		}
		if cmd == "limit" {
			pager.SetLimit(n)
		} else {
			moved = pager.GoTo(n)
		}
	}
	if !moved {
		printlnFn("No such page")
		return nil
	}
	return a.showPage(ctx)
}

func (a *App) showPage(ctx context.Context) error {
	l := a.listing
	params := models.ListParams{
		Page:          l.pager.Page(),
		Limit:         l.pager.Limit(),
		Search:        l.search,
		SortDirection: models.SortAsc,
	}

	var (
		p   models.Pagination
		err error
	)
	switch l.kind {
	case listUsers:
		params.SortBy = "username"
		p, err = a.showUsers(ctx, params)
	case listRoles:
		params.SortBy = "name"
		p, err = a.showRoles(ctx, params)
	case listAssignments:
		params.SortBy = "assignedAt"
		p, err = a.showAssignments(ctx, params)
	case listMembers:
		params.SortBy = "username"
		p, err = a.showMembers(ctx, params)
	}
	if err != nil {
		log.Printf("Listing failed: %s", err.Error())
		return err
	}

	l.pager.SetTotal(p.Total)
	printlnFn(fmt.Sprintf("page %d/%d, %d total", l.pager.Page(), max(l.pager.TotalPages(), 1), l.pager.Total()))
	return nil
}
