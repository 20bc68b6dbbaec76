package db

import (
	"errors"

	"github.com/ChitkulLakshya/PackPal/model"
	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserById(id int) (model.User, error) {
	var user model.User
	result := userDAO.db.First(&user, id)
	return user, result.Error
}

func (userDAO *UserDAO) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where("email = ?", email).First(&user)
	return user, result.Error
}

func (userDAO *UserDAO) AddUser(user model.User) (model.User, error) {
	result := userDAO.db.Create(&user)
	return user, result.Error
}

func (userDAO *UserDAO) DeleteUser(id int) error {
	result := userDAO.db.Delete(&model.User{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}
