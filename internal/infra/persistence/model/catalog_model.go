package model

// CategoryModel maps the 'categories' lookup table.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel maps the 'sub_categories' lookup table.
type SubCategoryModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ProvinceModel maps the 'provinces' lookup table.
type ProvinceModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (ProvinceModel) TableName() string {
	return "provinces"
}

// CityModel maps the 'cities' lookup table.
type CityModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	ProvinceID uint   `gorm:"index"`

	Province *ProvinceModel `gorm:"foreignKey:ProvinceID"`
}

func (CityModel) TableName() string {
	return "cities"
}
