package entity

// SafariPackage is a bookable tour package.
type SafariPackage struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	GroupSizeMin int    `db:"group_size_min"`
	GroupSizeMax int    `db:"group_size_max"`
	Picture      string `db:"picture"`
}
