package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/keitarosync/internal/client/storage"
)

var _ storage.AuthStorage = (*Storage)(nil)

// SaveAuth stores the session under its server URL
func (s *Storage) SaveAuth(_ context.Context, auth *storage.AuthData) error {
	if auth == nil || auth.ServerURL == "" {
		return errors.New("auth data must name a server")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return errors.New("auth bucket not found")
		}

		data, err := json.Marshal(auth)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		if err := bucket.Put([]byte(auth.ServerURL), data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}
		return nil
	})
}

// GetAuth retrieves the session stored for serverURL
func (s *Storage) GetAuth(_ context.Context, serverURL string) (*storage.AuthData, error) {
	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return errors.New("auth bucket not found")
		}

		data := bucket.Get([]byte(serverURL))
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return auth, nil
}

// DeleteAuth removes the session for serverURL (logout)
func (s *Storage) DeleteAuth(_ context.Context, serverURL string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return errors.New("auth bucket not found")
		}

		key := []byte(serverURL)
		if bucket.Get(key) == nil {
			return storage.ErrAuthNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}
		return nil
	})
}

// IsAuthenticated checks that a non-expired session exists
func (s *Storage) IsAuthenticated(ctx context.Context, serverURL string) (bool, error) {
	auth, err := s.GetAuth(ctx, serverURL)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	return !auth.Expired(s.now()), nil
}
