package key_manager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"TUI_yt_companion/internal/core/domain"
)

// StorageKey is the name the API key is stored under.
const StorageKey = "openrouter_api_key"

var errCorruptKeyFile = errors.New("key file is corrupt")

type keyServiceImpl struct {
	mu          sync.Mutex
	KeyFilePath string
}

type KeyService interface {
	LoadKey() (string, error)
	SaveKey(key string) error
	DeleteKey() error
}

func NewKeyService(keyFilePath string) KeyService {
	if keyFilePath == "" {
		keyFilePath = "credentials.json"
	}

	return &keyServiceImpl{
		KeyFilePath: keyFilePath,
	}
}

// DefaultKeyFilePath is <user config dir>/ytcompanion/credentials.json.
func DefaultKeyFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(dir, "ytcompanion", "credentials.json")
}

// LoadKey returns "" without error when no key has been saved yet.
func (k *keyServiceImpl) LoadKey() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := k.read()
	if err != nil {
		return "", err
	}
	return entries[StorageKey], nil
}

func (k *keyServiceImpl) SaveKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrEmptyAPIKey
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := k.readForUpdate()
	if err != nil {
		return err
	}
	entries[StorageKey] = key
	return k.write(entries)
}

func (k *keyServiceImpl) DeleteKey() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := k.read()
	if errors.Is(err, errCorruptKeyFile) {
		if err := os.Remove(k.KeyFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("could not remove key file: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if _, ok := entries[StorageKey]; !ok {
		return nil
	}
	delete(entries, StorageKey)

	if len(entries) == 0 {
		if err := os.Remove(k.KeyFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("could not remove key file: %w", err)
		}
		return nil
	}
	return k.write(entries)
}

// read treats an empty or "null" file as an empty store. Anything else that
// does not decode is reported as errCorruptKeyFile.
func (k *keyServiceImpl) read() (map[string]string, error) {
	raw, err := os.ReadFile(k.KeyFilePath)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open key file %s: %w", k.KeyFilePath, err)
	}

	var entries map[string]string
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode key file %s: %w: %v", k.KeyFilePath, errCorruptKeyFile, err)
		}
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

// readForUpdate starts over from an empty store when the file is corrupt so
// that saving or deleting the key repairs it.
func (k *keyServiceImpl) readForUpdate() (map[string]string, error) {
	entries, err := k.read()
	if errors.Is(err, errCorruptKeyFile) {
		return map[string]string{}, nil
	}
	return entries, err
}

// write replaces the file through a temporary sibling and a rename, so a
// crash never leaves a truncated key file behind.
func (k *keyServiceImpl) write(entries map[string]string) error {
	dir := filepath.Dir(k.KeyFilePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create key directory: %w", err)
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not encode key file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(k.KeyFilePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary key file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("could not set key file permissions: %w", err)
	}
	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write key file: %w", err)
	}
	if err := os.Rename(tmpPath, k.KeyFilePath); err != nil {
		return fmt.Errorf("could not replace key file %s: %w", k.KeyFilePath, err)
	}
	return nil
}
