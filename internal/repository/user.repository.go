package repository

import (
	"errors"
	"net/mail"
	"time"

	"cardioguard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountSuspended   = errors.New("account has been suspended")
	ErrAccountDeleted     = errors.New("account does not exist")
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	UpdateProfile(id uint, update ProfileUpdate) error
	Authenticate(login, password string) (*models.User, error)
	DeleteAccount(id uint) error
}

// ProfileUpdate is the fixed set of columns a user may change. Updates are
// built only from these fields, never from caller-supplied column names.
type ProfileUpdate struct {
	FullName    *string
	DateOfBirth *string
	Gender      *string
	Password    *string
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser registers a new account, hashing the password before it is
// stored. Username conflicts and email conflicts report distinct errors.
func (ur *userRepository) CreateUser(user *models.User) error {
	exists, err := ur.UsernameExists(user.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	exists, err = ur.EmailExists(user.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.Status = models.UserStatusActive

	return ur.db.Create(user).Error
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (ur *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateProfile applies a partial profile update. The password is only
// touched when a new one is supplied, and is re-hashed before the write.
func (ur *userRepository) UpdateProfile(id uint, update ProfileUpdate) error {
	values := map[string]interface{}{}

	if update.FullName != nil {
		values["full_name"] = *update.FullName
	}
	if update.DateOfBirth != nil {
		values["date_of_birth"] = *update.DateOfBirth
	}
	if update.Gender != nil {
		values["gender"] = *update.Gender
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		values["password"] = string(hashed)
	}

	if len(values) == 0 {
		return nil
	}

	result := ur.db.Model(&models.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Authenticate verifies credentials against the account looked up by
// username or email, refreshes last_login on success, and never returns
// the stored hash. Lookup misses and bad passwords are indistinguishable.
func (ur *userRepository) Authenticate(login, password string) (*models.User, error) {
	column := "username"
	if _, err := mail.ParseAddress(login); err == nil {
		column = "email"
	}

	var user models.User
	if err := ur.db.Where(column+" = ?", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, ErrAccountSuspended
	case models.UserStatusDeleted:
		return nil, ErrAccountDeleted
	}

	now := time.Now()
	if err := ur.db.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login", &now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	user.Password = ""

	return &user, nil
}

// DeleteAccount soft-deletes by flipping status; history rows stay behind
// their foreign key.
func (ur *userRepository) DeleteAccount(id uint) error {
	result := ur.db.Model(&models.User{}).Where("id = ?", id).Update("status", models.UserStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
