package entity

// Provider is a registered service provider profile linked to a user account.
type Provider struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	CompanyName string `db:"company_name"`
	LicenceNo   string `db:"licence_no"`
	Address     string `db:"address"`
	Status      string `db:"status"`
}
