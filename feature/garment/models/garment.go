package models

// GarmentRecord is a row of the garments table.
type GarmentRecord struct {
	ProductCode int64   `gorm:"column:product_code;primaryKey;autoIncrement:false"`
	Type        string  `gorm:"column:type;size:16;not null"`
	Name        string  `gorm:"column:name;size:255;not null"`
	Price       float64 `gorm:"column:price;not null"`
	Brand       string  `gorm:"column:brand;size:128"`
	Material    string  `gorm:"column:material;size:32"`
	Neckline    string  `gorm:"column:neckline;size:32"`
	SleeveType  string  `gorm:"column:sleeve_type;size:32"`
	PocketType  string  `gorm:"column:pocket_type;size:32"`
	HoodieStyle string  `gorm:"column:hoodie_style;size:32"`
	// Sizes is a comma separated list, e.g. "S,M,L".
	Sizes       string `gorm:"column:sizes;size:128;not null"`
	Description string `gorm:"column:description;type:text"`
}

// TableName overrides the table name.
func (GarmentRecord) TableName() string {
	return "garments"
}

// GarmentColumns lists the columns a garments table must provide.
var GarmentColumns = []string{
	"product_code", "type", "name", "price", "brand", "material",
	"neckline", "sleeve_type", "pocket_type", "hoodie_style", "sizes", "description",
}
