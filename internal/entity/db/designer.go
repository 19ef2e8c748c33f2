package db

// Designer 设计师目录中的一行
type Designer struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Nationality string `gorm:"column:nationality;type:text;not null" json:"nationality"`
	Style       string `gorm:"column:style;type:text;not null" json:"style"`
	FamousWorks string `gorm:"column:famous_works;type:text;not null" json:"famous_works"`
	Website     string `gorm:"column:website;type:text;not null" json:"website"`
}

// TableName 指定表名
func (Designer) TableName() string {
	return "designers"
}
