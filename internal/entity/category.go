package entity

import "fmt"

// MessageCategory selects which prompt preset drives the generation
// call. The set is fixed at process start; the HTTP layer only ever
// offers these four values.
type MessageCategory string

const (
	CategoryColdOutreach MessageCategory = "Cold Outreach"
	CategoryFollowUp     MessageCategory = "Follow-up"
	CategoryProductDemo  MessageCategory = "Product Demo"
	CategoryPartnership  MessageCategory = "Partnership"
)

// Categories lists every defined category in display order.
func Categories() []MessageCategory {
	return []MessageCategory{
		CategoryColdOutreach,
		CategoryFollowUp,
		CategoryProductDemo,
		CategoryPartnership,
	}
}

func ParseCategory(s string) (MessageCategory, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown message category %q", s)
}

func (c MessageCategory) String() string {
	return string(c)
}
