package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/platform/blob"
	"github.com/phrazzld/nani-api/internal/store"
)

type fakeBookRepo struct {
	db        *sql.DB
	books     map[uuid.UUID]*domain.Book
	createErr error
	deleteErr error
}

func newFakeBookRepo(db *sql.DB) *fakeBookRepo {
	return &fakeBookRepo{db: db, books: map[uuid.UUID]*domain.Book{}}
}

func (r *fakeBookRepo) Create(_ context.Context, b *domain.Book) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) List(context.Context) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) WithTx(*sql.Tx) store.BookStore { return r }

func (r *fakeBookRepo) DB() *sql.DB { return r.db }

type fakeBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putErr    error
	deleteErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}}
}

func (b *fakeBlobs) Put(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.putErr != nil {
		return b.putErr
	}
	b.objects[name] = data
	return nil
}

func (b *fakeBlobs) Get(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.objects[name]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return d, nil
}

func (b *fakeBlobs) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.deleteErr != nil {
		return b.deleteErr
	}
	if _, ok := b.objects[name]; !ok {
		return blob.ErrNotFound
	}
	delete(b.objects, name)
	return nil
}

type fakeSubjects struct {
	created []string
	err     error
}

func (f *fakeSubjects) List(context.Context) ([]domain.Subject, error) {
	return []domain.Subject{{ID: 1, Name: "國語"}}, f.err
}

func (f *fakeSubjects) Create(_ context.Context, name string) (*domain.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, name)
	return &domain.Subject{ID: int64(len(f.created) + 1), Name: name}, nil
}

func (f *fakeSubjects) Delete(context.Context, int64) error { return f.err }

type fakeSettings struct {
	values map[string]string
	getErr error
	sets   int
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: map[string]string{}}
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) error {
	f.sets++
	f.values[key] = value
	return nil
}

var errDiskFull = errors.New("disk full")
