package model

import "time"

type User struct {
	UserID       int       `gorm:"column:id_user;primaryKey;autoIncrement" json:"user_id"`
	Name         string    `gorm:"column:name;type:text;not null" json:"name"`
	Email        string    `gorm:"column:email;type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "user"
}
