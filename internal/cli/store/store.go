package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

const (
	service       = "libhub-cli"
	configDirName = "libhub"
)

// Profile is the persisted snapshot of the authenticated identity. It is a
// cached projection of server-side truth and must be treated as stale until
// reconciled via the who-am-I call.
type Profile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// RoleAdmin is the role value designating administrative access.
const RoleAdmin = "ADMIN"

// Store persists the session credential and profile across runs. A nil
// credential passed to Write clears the profile as well, so an orphaned
// profile can never outlive its credential.
type Store interface {
	// Read returns the stored credential, if any.
	Read() (string, bool)
	// ReadProfile returns the stored profile. A corrupt or unreadable
	// stored value reads as absent, never as an error.
	ReadProfile() (*Profile, bool)
	// Write sets or clears both slots. credential == nil clears the
	// profile regardless of the profile argument.
	Write(credential *string, profile *Profile) error
}

// KeyringStore keeps the credential in the OS keychain/credential manager
// and the profile as a JSON file under the user config directory. Entries
// are scoped per server host so sessions against different servers do not
// clobber each other.
type KeyringStore struct {
	host string
	dir  string
}

// NewKeyringStore creates a store scoped to the given server host.
func NewKeyringStore(host string) (*KeyringStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &KeyringStore{
		host: host,
		dir:  filepath.Join(homeDir, ".config", configDirName),
	}, nil
}

func (s *KeyringStore) keyringKey() string {
	return fmt.Sprintf("token-%s", s.host)
}

func (s *KeyringStore) profilePath() string {
	return filepath.Join(s.dir, fmt.Sprintf("profile-%s.json", s.host))
}

func (s *KeyringStore) Read() (string, bool) {
	token, err := keyring.Get(service, s.keyringKey())
	if err != nil {
		return "", false
	}
	return token, true
}

func (s *KeyringStore) ReadProfile() (*Profile, bool) {
	data, err := os.ReadFile(s.profilePath())
	if err != nil {
		return nil, false
	}
	return decodeProfile(data)
}

func (s *KeyringStore) Write(credential *string, profile *Profile) error {
	if credential == nil {
		if err := keyring.Delete(service, s.keyringKey()); err != nil &&
			!errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to clear credential: %w", err)
		}
		return s.removeProfile()
	}

	if err := keyring.Set(service, s.keyringKey(), *credential); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	if profile == nil {
		return s.removeProfile()
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(s.profilePath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func (s *KeyringStore) removeProfile() error {
	if err := os.Remove(s.profilePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}

// decodeProfile is a best-effort decode: anything unparsable reads as absent.
func decodeProfile(data []byte) (*Profile, bool) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}
