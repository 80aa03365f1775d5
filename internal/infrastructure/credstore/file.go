package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type fileContents struct {
	Token string `json:"token"`
}

// File is a credential store persisted to a JSON file, lazily read on first
// access within a session. Set and Clear write through immediately.
type File struct {
	path string

	mu     sync.Mutex
	token  string
	loaded bool
}

// NewFile creates a file-backed store at path. When path is empty a default
// under the user config dir is used.
func NewFile(path string) (*File, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "crestfin", "credentials.json")
	}
	return &File{path: path}, nil
}

func (f *File) Get() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loaded {
		f.load()
	}
	return f.token, f.token != ""
}

func (f *File) Set(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = token
	f.loaded = true

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return
	}
	data, _ := json.Marshal(fileContents{Token: token})
	_ = os.WriteFile(f.path, data, 0o600)
}

func (f *File) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = ""
	f.loaded = true
	_ = os.Remove(f.path)
}

// load reads the persisted token. Missing or corrupt files mean no credential.
func (f *File) load() {
	f.loaded = true

	data, err := os.ReadFile(f.path)
	if err != nil {
		return
	}
	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return
	}
	f.token = contents.Token
}
