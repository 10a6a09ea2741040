package entity

const TableNameCategory = "categories"

// Category is a labeled grouping for questions.
type Category struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"column:type;not null" json:"type"`
}

func (*Category) TableName() string {
	return TableNameCategory
}

// CategoryMap keys category labels by id, in the shape the client expects.
func CategoryMap(categories []*Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, cat := range categories {
		out[cat.ID] = cat.Type
	}
	return out
}
