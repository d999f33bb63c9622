package persist

import (
	"errors"
	"os"
	"path/filepath"
)

// Storage is a string key/value store, like a browser's local storage
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

var (
	_ Storage = &Dir{}
	_ Storage = &Memory{}
)

const (
	tmpSuffix    = ".tmp"
	backupSuffix = ".backup"
)

// Dir keeps one json file per key inside a directory
type Dir struct {
	path string
}

func InDir(path string) *Dir {
	return &Dir{path}
}

func (d Dir) file(key string) string {
	return filepath.Join(d.path, key+".json")
}

func (d Dir) GetItem(key string) (string, bool, error) {
	bs, err := os.ReadFile(d.file(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(bs), true, nil
}

// SetItem writes to a temp file first and renames it over the old one.
// The previous value is kept next to it with a .backup suffix.
func (d Dir) SetItem(key, value string) error {
	if err := os.MkdirAll(d.path, 0700); err != nil {
		return err
	}
	file := d.file(key)
	tmp := file + tmpSuffix
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return err
	}
	if _, err := os.Stat(file); err == nil {
		if err := os.Rename(file, file+backupSuffix); err != nil {
			return err
		}
	}
	return os.Rename(tmp, file)
}

func (d Dir) RemoveItem(key string) error {
	err := os.Remove(d.file(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Memory is an in-process Storage. Setting Fail makes every write
// return it, which is how a full quota looks to the caller.
// The zero value is ready to use.
type Memory struct {
	items map[string]string
	Fail  error
}

func InMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	if m.Fail != nil {
		return m.Fail
	}
	if m.items == nil {
		m.items = map[string]string{}
	}
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(key string) error {
	delete(m.items, key)
	return nil
}
