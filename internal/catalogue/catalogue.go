// Package catalogue holds the fixed set of sensory-experience items presented by the
// assessment. The dataset covers eight sensory systems and is embedded at build time;
// nothing in the application mutates it.
package catalogue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/windgap/sensoryprofile/internal/errors"

	_ "embed"
)

//go:embed catalogue.json
var catalogueData []byte

// Item is a single scenario statement the respondent rates.
type Item struct {
	Prompt   string `json:"prompt"`
	Examples string `json:"examples"`
	// Guidance is optional extra direction for the respondent. The current dataset leaves it empty.
	Guidance string `json:"guidance,omitempty"`
}

// Category groups the items of one sensory system.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Key returns the stable identifier joining the category's item at index to its
// saved response. Reordering categories or items would invalidate saved
// responses, so the embedded dataset is treated as append-only.
func (c Category) Key(index int) string {
	return fmt.Sprintf("%s-%d", c.ID, index)
}

// Keys returns the item keys of the category in item order.
func (c Category) Keys() []string {
	keys := make([]string, len(c.Items))
	for i := range c.Items {
		keys[i] = c.Key(i)
	}
	return keys
}

var categories = mustLoad()

func mustLoad() []Category {
	var loaded []Category
	if err := json.Unmarshal(catalogueData, &loaded); err != nil {
		panic(errors.Wrap(err, "parse embedded catalogue"))
	}
	return loaded
}

// Categories returns all sensory system categories in presentation order.
func Categories() []Category {
	return categories
}

// TotalItems returns the number of items across all categories.
func TotalItems() int {
	total := 0
	for _, c := range categories {
		total += len(c.Items)
	}
	return total
}

// AllKeys returns every item key in catalogue order.
func AllKeys() []string {
	keys := make([]string, 0, TotalItems())
	for _, c := range categories {
		keys = append(keys, c.Keys()...)
	}
	return keys
}

var ErrUnknownItem = errors.NewSentinel("unknown catalogue item")

// Lookup resolves an item key of the form "categoryID-index" to its category and item.
func Lookup(key string) (Category, Item, error) {
	sep := strings.LastIndex(key, "-")
	if sep < 0 {
		return Category{}, Item{}, errors.Wrap(ErrUnknownItem, "malformed item key")
	}
	categoryID, indexPart := key[:sep], key[sep+1:]
	index, err := strconv.Atoi(indexPart)
	if err != nil {
		return Category{}, Item{}, errors.Wrap(ErrUnknownItem, "malformed item index")
	}
	for _, c := range categories {
		if c.ID == categoryID {
			if index < 0 || index >= len(c.Items) {
				return Category{}, Item{}, errors.Wrap(ErrUnknownItem, "item index out of range")
			}
			return c, c.Items[index], nil
		}
	}
	return Category{}, Item{}, errors.Wrap(ErrUnknownItem, "no such category")
}
