package mealplan

import (
	"regexp"
	"strings"

	"github.com/homeplanner/homeplanner/pkg/schedule"
)

// Slot is the meal classification extracted from an event title.
type Slot string

const (
	SlotBreakfast Slot = "Breakfast"
	SlotBrunch    Slot = "Brunch"
	SlotLunch     Slot = "Lunch"
	SlotDinner    Slot = "Dinner"
	SlotSnack     Slot = "Snack"
	SlotUnlabeled Slot = "Unlabeled"
)

// Meal is the extraction result for one calendar event. Extraction is
// total: every title yields a slot and a name. HasDistinctDescription tells
// the caller whether the description adds anything beyond the name, so the
// display layer can decide whether to show it.
type Meal struct {
	Slot                   Slot
	Name                   string
	Description            string
	HasDistinctDescription bool
}

// titlePattern matches "<slot keyword>[:] <remainder>", case-insensitive.
var titlePattern = regexp.MustCompile(`(?i)^\s*(breakfast|brunch|lunch|dinner|snack):?\s+(\S.*)$`)

var slotByKeyword = map[string]Slot{
	"breakfast": SlotBreakfast,
	"brunch":    SlotBrunch,
	"lunch":     SlotLunch,
	"dinner":    SlotDinner,
	"snack":     SlotSnack,
}

// Extract pulls a meal slot and name out of a free-text event title. Titles
// without a leading slot keyword fall back to the Unlabeled slot with the
// full title as the name; an empty title gets the usual placeholder.
func Extract(title, description string) Meal {
	meal := Meal{Slot: SlotUnlabeled, Description: description}

	if match := titlePattern.FindStringSubmatch(title); match != nil {
		meal.Slot = slotByKeyword[strings.ToLower(match[1])]
		meal.Name = strings.TrimSpace(match[2])
	} else {
		meal.Name = strings.TrimSpace(title)
	}
	if meal.Name == "" {
		meal.Name = schedule.NoTitlePlaceholder
	}

	meal.HasDistinctDescription = description != "" &&
		description != meal.Name && description != title

	return meal
}
