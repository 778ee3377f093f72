package domain

// User is an account row. PasswordHash is the opaque digest from the hashing
// boundary; the plaintext password is never stored. Users are immutable after
// registration.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    int64  `json:"-" gorm:"autoCreateTime:milli"`
	Todos        []Todo `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}
