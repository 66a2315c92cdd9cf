package repository

import (
	"context"

	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindByName(ctx context.Context, name string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpsertNames(ctx context.Context, names []string) error
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByName returns gorm.ErrRecordNotFound (wrapped) when the user does
// not exist; callers check it with errors.Is.
func (r *userRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, storageErr("find user", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return storageErr("create user", r.db.WithContext(ctx).Create(user).Error)
}

// UpsertNames inserts review authors discovered by the ETL sync, ignoring
// names that already exist. Imported users have no password hash and
// cannot log in until they register.
func (r *userRepository) UpsertNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, models.User{Name: name})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		CreateInBatches(users, 500).Error
	return storageErr("upsert user names", err)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return storageErr("update user", r.db.WithContext(ctx).Save(user).Error)
}
