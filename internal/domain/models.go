package domain

import (
	"fmt"
	"strconv"
)

// Valid page number range
const (
	FirstPage = 100
	LastPage  = 999
)

// Page is a single teletext page as delivered by a page source
type Page struct {
	Number int
	Text   string // markup-stripped, entity-decoded page text
}

// Category is the editorial section a page number falls into,
// identified by its hundreds value
type Category int

const (
	CategoryNews     Category = 100
	CategoryEconomy  Category = 200
	CategorySport    Category = 300
	CategoryWeather  Category = 400
	CategoryMisc     Category = 500
	CategoryTV       Category = 600
	CategoryContents Category = 700
	CategoryUR       Category = 800
)

var categoryNames = map[Category]string{
	CategoryNews:     "Nyheter",
	CategoryEconomy:  "Ekonomi",
	CategorySport:    "Sport",
	CategoryWeather:  "Väder",
	CategoryMisc:     "Blandat",
	CategoryTV:       "TV",
	CategoryContents: "Innehåll",
	CategoryUR:       "UR",
}

// String returns the Swedish section name shown in the header.
// Unnamed sections print their hundreds value.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// CategoryOf maps a page number to its section by hundreds digit
func CategoryOf(number int) Category {
	return Category(number - number%100)
}

// Category returns the section of the page
func (p Page) Category() Category {
	return CategoryOf(p.Number)
}

// Direction is the way a page search walks the number space
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
