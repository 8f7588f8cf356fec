package clix

import (
	"fmt"

	"github.com/spf13/pflag"

	"rightsteps/internal/services"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads --limit and --offset for offset-paged listings.
func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		return PaginationParams{}, fmt.Errorf("offset must not be negative, got %d", offset)
	}
	return PaginationParams{Limit: limit, Offset: offset}, nil
}

// ParsePage reads --page and --limit for the catalog listings.
func ParsePage(flags *pflag.FlagSet) (services.Page, error) {
	page, _ := flags.GetInt("page")
	limit, _ := flags.GetInt("limit")
	if page < 1 {
		return services.Page{}, fmt.Errorf("page must be at least 1, got %d", page)
	}
	if limit < 1 {
		return services.Page{}, fmt.Errorf("limit must be at least 1, got %d", limit)
	}
	return services.Page{Page: page, Limit: limit}, nil
}

// AddPageFlags registers --page and --limit with the catalog defaults.
func AddPageFlags(flags *pflag.FlagSet) {
	flags.Int("page", services.DefaultPage, "Page number, starting at 1")
	flags.Int("limit", services.DefaultPageLimit, "Results per page")
}
