package domain

// Todo is a task row owned by exactly one user. Completed persists as
// INTEGER 0/1 at the schema boundary; CreatedAt is only used for the
// newest-first default ordering.
type Todo struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OwnerID   uint   `json:"owner_id" gorm:"not null;index"`
	Text      string `json:"text" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"not null;default:0"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime:milli"`
}
