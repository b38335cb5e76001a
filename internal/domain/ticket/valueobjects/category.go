package valueobjects

import "fmt"

type Category string

const (
	CategoryHardware      Category = "Hardware Issue"
	CategorySoftware      Category = "Software Issue"
	CategoryNetworkAccess Category = "Network Access"
	CategoryAccountAccess Category = "Account & Access"
	CategoryResource      Category = "Resource Request"
	CategoryFacilities    Category = "Facilities Support"
	CategoryHRAdmin       Category = "HR & Admin Inquiry"
	CategoryGeneralIT     Category = "General IT Support"
)

const DefaultCategory = CategoryGeneralIT

var validCategories = map[Category]bool{
	CategoryHardware:      true,
	CategorySoftware:      true,
	CategoryNetworkAccess: true,
	CategoryAccountAccess: true,
	CategoryResource:      true,
	CategoryFacilities:    true,
	CategoryHRAdmin:       true,
	CategoryGeneralIT:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

func CategoryOrDefault(s string) (Category, error) {
	if s == "" {
		return DefaultCategory, nil
	}
	return NewCategory(s)
}
