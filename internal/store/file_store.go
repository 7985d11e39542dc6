package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlinks/internal/model"
)

// FileStore декоратор над Store, который сохраняет снимок всех ссылок в JSON файл
// после каждого изменения
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	prev, existed := fs.store.snapshot(link.ID)

	saved, err := fs.store.Save(ctx, link)
	if err != nil {
		return model.ShortLink{}, err
	}

	// Файл не обновился: откатываем память, чтобы не показывать несохранённую запись
	if err := fs.flush(ctx); err != nil {
		fs.store.restore(saved.ID, prev, existed)
		return model.ShortLink{}, err
	}

	return saved, nil
}

func (fs *FileStore) FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	return fs.store.FindByCode(ctx, code)
}

func (fs *FileStore) FindByID(ctx context.Context, id string) (model.ShortLink, error) {
	return fs.store.FindByID(ctx, id)
}

func (fs *FileStore) DeleteByID(ctx context.Context, id string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	prev, existed := fs.store.snapshot(id)

	if err := fs.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := fs.flush(ctx); err != nil {
		fs.store.restore(id, prev, existed)
		return err
	}

	return nil
}

func (fs *FileStore) FindAll(ctx context.Context) ([]model.ShortLink, error) {
	return fs.store.FindAll(ctx)
}

// flush переписывает файл текущим содержимым in-memory store
func (fs *FileStore) flush(ctx context.Context) error {
	links, err := fs.store.FindAll(ctx)
	if err != nil {
		return err
	}

	entries := make([]model.LinkEntry, len(links))
	for i, link := range links {
		entries[i] = link.ToEntry()
	}

	if err := fs.fileStorage.Save(entries); err != nil {
		return fmt.Errorf("failed to persist links: %w", err)
	}

	return nil
}

func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	links := make([]model.ShortLink, len(entries))
	for i, entry := range entries {
		links[i] = entry.ToShortLink()
	}

	fs.store.InitializeWith(links)

	return nil
}
