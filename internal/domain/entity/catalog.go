package entity

// Category groups publications at the top level.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SubCategory refines a category.
type SubCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Province is a first-level administrative region.
type Province struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// City is where a publication is located.
type City struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ProvinceID uint      `json:"province_id"`
	Province   *Province `json:"province,omitempty"`
}
