package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/prepdrill/prepdrill/pkg/model"
)

// FileStore persists transcripts as one JSON file per session or
// conversation, named with a timestamp so files never collide within a
// second of each other.
type FileStore struct {
	sessionsDir      string
	conversationsDir string
	now              func() time.Time
}

func NewFileStore(sessionsDir, conversationsDir string) *FileStore {
	return &FileStore{
		sessionsDir:      sessionsDir,
		conversationsDir: conversationsDir,
		now:              time.Now,
	}
}

// SaveSession writes the transcript and returns the file name it was saved
// under.
func (s *FileStore) SaveSession(rec *model.SessionRecord) (string, error) {
	if err := os.MkdirAll(s.sessionsDir, 0o755); err != nil {
		return "", fmt.Errorf("create sessions dir: %w", err)
	}

	name := fmt.Sprintf("session_%s.json", s.now().Format("20060102_150405"))
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.sessionsDir, name), b, 0o644); err != nil {
		return "", fmt.Errorf("write session: %w", err)
	}
	return name, nil
}

// SaveConversation writes a practice-chat transcript. The file name carries
// a slug of the job role, "general" when none was given.
func (s *FileStore) SaveConversation(rec *model.ConversationRecord) (string, error) {
	if err := os.MkdirAll(s.conversationsDir, 0o755); err != nil {
		return "", fmt.Errorf("create conversations dir: %w", err)
	}

	now := s.now()
	if rec.Timestamp == "" {
		rec.Timestamp = now.Format("2006-01-02 15:04:05")
	}

	slug := "general"
	if rec.JobRole != "" {
		slug = strings.ReplaceAll(strings.ToLower(rec.JobRole), " ", "_")
	}
	name := fmt.Sprintf("interview_%s_%s.json", slug, now.Format("20060102-150405"))

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode conversation: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.conversationsDir, name), b, 0o644); err != nil {
		return "", fmt.Errorf("write conversation: %w", err)
	}
	return name, nil
}

// ListSessions returns saved session file names, newest first. A missing
// directory just means nothing has been saved yet.
func (s *FileStore) ListSessions() ([]string, error) {
	entries, err := os.ReadDir(s.sessionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// LoadSession reads one saved transcript. Older files may lack optional
// fields; those get defaults instead of failing the read.
func (s *FileStore) LoadSession(name string) (*model.SessionRecord, error) {
	// names come from URLs; never let them escape the sessions dir
	name = filepath.Base(name)

	b, err := os.ReadFile(filepath.Join(s.sessionsDir, name))
	if err != nil {
		return nil, err
	}

	var rec model.SessionRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", name, err)
	}
	rec.Normalize()
	return &rec, nil
}
