package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
)

// Store layers a primary preference store over a mirror. The primary is the
// authority: every process can write it, including one that cannot open the
// mirror, so a value or an absence in the primary always wins. The mirror
// only serves reads when the primary cannot be read at all.
type Store struct {
	primary ports.KeyValueStore
	mirror  ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore = errors.New("primary preference store is nil")
	errNilMirrorStore  = errors.New("mirror preference store is nil")
)

func NewStore(primary ports.KeyValueStore, mirror ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(primary, mirror)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyValueStore, mirror ports.KeyValueStore) (*Store, error) {
	switch {
	case primary == nil:
		return nil, errNilPrimaryStore
	case mirror == nil:
		return nil, errNilMirrorStore
	}

	return &Store{primary: primary, mirror: mirror}, nil
}

// Set fails when the primary rejects the value, leaving the mirror
// untouched. Mirror failures are ignored.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.primary.Set(ctx, key, value); err != nil {
		return err
	}

	_ = s.mirror.Set(ctx, key, value)

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, primaryErr := s.primary.Get(ctx, key)
	switch {
	case primaryErr == nil:
		return value, nil
	case isCanceled(primaryErr), errors.Is(primaryErr, domain.ErrKeyNotFound):
		return nil, primaryErr
	}

	value, mirrorErr := s.mirror.Get(ctx, key)
	if mirrorErr == nil {
		return value, nil
	}

	return nil, fmt.Errorf("get preference %q: %w", key, errors.Join(primaryErr, mirrorErr))
}

// Delete removes the value from the primary first. Its absence there hides
// any copy left in the mirror.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.primary.Delete(ctx, key); err != nil {
		return err
	}

	_ = s.mirror.Delete(ctx, key)

	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
