package repositories

import (
	"github.com/swaupd/OsBlogApp/internal/apperrors"
	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/store"
)

// KVUserRepository keeps the full user sequence under the store's users key.
// Every operation re-reads the whole sequence and every mutation rewrites it
// wholesale; there is no indexed access.
type KVUserRepository struct {
	kv store.KVStore
}

// NewKVUserRepository creates a new instance of KVUserRepository.
func NewKVUserRepository(kv store.KVStore) *KVUserRepository {
	return &KVUserRepository{kv: kv}
}

// GetAll loads the persisted user sequence. An absent key reads as an empty
// sequence.
func (r *KVUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if _, err := r.kv.Get(store.UsersKey, &users); err != nil {
		return nil, &apperrors.StorageError{Op: "get", Key: store.UsersKey, Err: err}
	}
	return users, nil
}

// Append adds user to the sequence and rewrites it. Nothing is persisted when
// the write fails.
func (r *KVUserRepository) Append(user models.User) error {
	users, err := r.GetAll()
	if err != nil {
		return err
	}
	users = append(users, user)
	if err := r.kv.Set(store.UsersKey, users); err != nil {
		return &apperrors.StorageError{Op: "set", Key: store.UsersKey, Err: err}
	}
	return nil
}

// FindByUsername linear-scans the sequence for an exact username match.
func (r *KVUserRepository) FindByUsername(username string) (*models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail linear-scans the sequence for an exact email match.
func (r *KVUserRepository) FindByEmail(email string) (*models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByCredentials linear-scans for an exact match on both username and
// password.
func (r *KVUserRepository) FindByCredentials(username, password string) (*models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, nil
}
