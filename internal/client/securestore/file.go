package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/cryptox"
	"github.com/johnp-05/sumativatr1/internal/filex"
)

const (
	storeFileName = "secure.bin"
	keyFileName   = "device.key"

	secretLen = 32
	saltLen   = 16
)

// FileStore keeps the whole key-value map as one AES-GCM-sealed JSON blob
// on disk. Every mutation rewrites the entire blob; there is no partial
// update and no versioning.
//
// The AES key is derived (argon2id) from a random device secret created on
// first use and stored next to the blob with owner-only permissions. This
// stands in for the OS keychain the mobile original relied on.
type FileStore struct {
	path string
	key  []byte
}

// NewFileStore opens (or initializes) the encrypted store under dir.
func NewFileStore(dir string) (*FileStore, error) {
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}

	key, err := loadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}

	return &FileStore{path: filepath.Join(dir, storeFileName), key: key}, nil
}

func loadOrCreateKey(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(raw) != secretLen+saltLen {
			return nil, fmt.Errorf("device key file %s is corrupt", path)
		}
	case errors.Is(err, fs.ErrNotExist):
		raw = common.GenerateRandByteArray(secretLen + saltLen)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("writing device key: %w", err)
		}
	default:
		return nil, fmt.Errorf("reading device key: %w", err)
	}

	secret, salt := raw[:secretLen], raw[secretLen:]
	return cryptox.DeriveKey(secret, salt), nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	m, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.save(m)
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secure store: %w", err)
	}
	if len(raw) < cryptox.NonceSize {
		return nil, fmt.Errorf("secure store file %s is corrupt", s.path)
	}

	nonce, ciphertext := raw[:cryptox.NonceSize], raw[cryptox.NonceSize:]
	plaintext, err := cryptox.Open(ciphertext, nonce, s.key)
	if err != nil {
		return nil, fmt.Errorf("decrypting secure store: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(plaintext, &m); err != nil {
		return nil, fmt.Errorf("decoding secure store: %w", err)
	}
	return m, nil
}

func (s *FileStore) save(m map[string]string) error {
	plaintext, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding secure store: %w", err)
	}

	ciphertext, nonce, err := cryptox.Seal(plaintext, s.key)
	if err != nil {
		return fmt.Errorf("encrypting secure store: %w", err)
	}

	// Write to a temp file first so a crash mid-write cannot corrupt the blob.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(nonce, ciphertext...), 0o600); err != nil {
		return fmt.Errorf("writing secure store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing secure store: %w", err)
	}
	return nil
}
