package entity

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;type:varchar(20);not null"`
	Email     string    `json:"email" gorm:"unique;type:varchar(100);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	FirstName string    `json:"firstName" gorm:"type:varchar(50);not null"`
	LastName  string    `json:"lastName" gorm:"type:varchar(50);not null"`
	Avatar    string    `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Messages []Message `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
