package prediction

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Category of a detected object.
type Category int

const (
	UnknownCategory Category = iota
	AnimalCategory
	HumanCategory
	VehicleCategory
)

var categoryNames = map[Category]string{
	AnimalCategory:  "animal",
	HumanCategory:   "human",
	VehicleCategory: "vehicle",
}

// NewCategory converts a category index ("1", "2", "3") or a category name
// to Category.
func NewCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return categoryFromInt(i)
	}
	for k, v := range categoryNames {
		if v == s {
			return k
		}
	}
	return UnknownCategory
}

func categoryFromInt(i int) Category {
	c := Category(i)
	if _, ok := categoryNames[c]; ok {
		return c
	}
	return UnknownCategory
}

func (c Category) String() string {
	if res, ok := categoryNames[c]; ok {
		return res
	}
	return "unknown"
}

// MarshalJSON writes the category as a string index, the way detector
// output does.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(c)))
}

// UnmarshalJSON accepts the category index as a string or a number.
func (c *Category) UnmarshalJSON(bs []byte) error {
	var s string
	if err := json.Unmarshal(bs, &s); err == nil {
		*c = NewCategory(s)
		return nil
	}
	var i int
	if err := json.Unmarshal(bs, &i); err != nil {
		return err
	}
	*c = categoryFromInt(i)
	return nil
}
