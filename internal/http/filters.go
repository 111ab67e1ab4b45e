package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookstore/internal/inventory"
)

// Query parameters accepted by the list and total endpoints.
// The "bigger"/"less" bounds are inclusive.
const (
	queryAuthor          = "author"
	queryPriceBiggerThan = "price-bigger-than"
	queryPriceLessThan   = "price-less-than"
	queryYearBiggerThan  = "year-bigger-than"
	queryYearLessThan    = "year-less-than"
	queryGenres          = "genres"
)

// parseCriteria turns the request query into typed filter criteria.
// Malformed numbers yield an inventory.ErrBadRequest error. Genre names are
// checked later by the store.
func parseCriteria(c *gin.Context) (inventory.Criteria, error) {
	var criteria inventory.Criteria

	if author, ok := queryValue(c, queryAuthor); ok {
		criteria.Author = &author
	}

	var err error
	if criteria.PriceAtLeast, err = priceParam(c, queryPriceBiggerThan); err != nil {
		return inventory.Criteria{}, err
	}
	if criteria.PriceAtMost, err = priceParam(c, queryPriceLessThan); err != nil {
		return inventory.Criteria{}, err
	}
	if criteria.YearAtLeast, err = yearParam(c, queryYearBiggerThan); err != nil {
		return inventory.Criteria{}, err
	}
	if criteria.YearAtMost, err = yearParam(c, queryYearLessThan); err != nil {
		return inventory.Criteria{}, err
	}

	for _, raw := range c.QueryArray(queryGenres) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		criteria.GenresAny = append(criteria.GenresAny, strings.Split(raw, ",")...)
	}

	return criteria, nil
}

func priceParam(c *gin.Context, name string) (*float64, error) {
	raw, ok := queryValue(c, name)
	if !ok {
		return nil, nil
	}
	value, err := parsePrice(raw)
	if err != nil {
		return nil, invalidParamError(name, raw)
	}
	return &value, nil
}

func yearParam(c *gin.Context, name string) (*int, error) {
	raw, ok := queryValue(c, name)
	if !ok {
		return nil, nil
	}
	value, err := parseInt(raw)
	if err != nil {
		return nil, invalidParamError(name, raw)
	}
	return &value, nil
}

func invalidParamError(name, raw string) error {
	return inventory.NewBadRequestError(fmt.Sprintf("Error: Invalid value [%s] for query parameter %s", raw, name))
}
