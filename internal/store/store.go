package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/songbook/songbook/internal/model"
)

// Store holds the ordered song collection in memory and synchronizes it
// with a JSON file on disk. It is not safe for concurrent use; the app
// runs it from a single goroutine.
type Store struct {
	path     string
	songs    []model.Song
	autoSave bool
	log      *zap.SugaredLogger
	validate *validator.Validate
}

// Option configures a Store.
type Option func(*Store)

// WithAutoSave makes every successful mutation flush to disk immediately.
func WithAutoSave(enabled bool) Option {
	return func(s *Store) { s.autoSave = enabled }
}

// WithLogger sets the logger used for operation logging.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store backed by the JSON file at path. Call Load before
// using it.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		log:      zap.NewNop().Sugar(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the songs file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// SetAutoSave toggles auto-save at runtime (wired to the settings dialog).
func (s *Store) SetAutoSave(enabled bool) {
	s.autoSave = enabled
}

// songInput mirrors the user-supplied fields for validation.
type songInput struct {
	Title  string `validate:"required"`
	Number string
}

// Match pairs a song with its position in the collection, so the UI can
// address songs from a filtered view.
type Match struct {
	Index int
	Song  model.Song
}

// Load reads the songs file into memory. A missing file is created as an
// empty JSON array. A file that cannot be parsed as a song array returns
// an error wrapping ErrCorruptFile and leaves the in-memory collection
// untouched.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.songs = nil
		if err := s.writeFile(nil); err != nil {
			return err
		}
		s.log.Infow("created songs file", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	songs, err := decodeSongs(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.songs = songs
	s.log.Debugw("songs loaded", "path", s.path, "count", len(songs))
	return nil
}

// Save writes the whole collection back to the songs file, replacing it.
func (s *Store) Save() error {
	if err := s.writeFile(s.songs); err != nil {
		return err
	}
	s.log.Debugw("songs saved", "path", s.path, "count", len(s.songs))
	return nil
}

// Len returns the number of songs in the collection.
func (s *Store) Len() int {
	return len(s.songs)
}

// List returns a copy of the full ordered collection.
func (s *Store) List() []model.Song {
	return append([]model.Song(nil), s.songs...)
}

// Get returns the song at index i.
func (s *Store) Get(i int) (model.Song, error) {
	if err := s.checkIndex(i); err != nil {
		return model.Song{}, err
	}
	return s.songs[i], nil
}

// Find returns the songs matching query together with their collection
// indices, preserving order. The empty query matches every song.
func (s *Store) Find(query string) []Match {
	matches := make([]Match, 0, len(s.songs))
	for i, song := range s.songs {
		if song.Matches(query) {
			matches = append(matches, Match{Index: i, Song: song})
		}
	}
	return matches
}

// Search returns the songs whose title or number contains query as a
// case-insensitive substring. The empty query returns the full collection.
func (s *Store) Search(query string) []model.Song {
	matches := s.Find(query)
	songs := make([]model.Song, 0, len(matches))
	for _, m := range matches {
		songs = append(songs, m.Song)
	}
	return songs
}

// Add appends a new song to the end of the collection. The title must be
// non-empty after trimming.
func (s *Store) Add(title, number string) (model.Song, error) {
	song := model.Song{
		Title:  strings.TrimSpace(title),
		Number: strings.TrimSpace(number),
	}
	if err := s.validate.Struct(songInput{Title: song.Title, Number: song.Number}); err != nil {
		return model.Song{}, ErrTitleRequired
	}

	s.songs = append(s.songs, song)
	s.log.Debugw("song added", "title", song.Title, "index", len(s.songs)-1)
	return song, s.flush()
}

// Edit replaces the title and number of the song at index i in place.
// On failure the collection is unchanged.
func (s *Store) Edit(i int, title, number string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	song := model.Song{
		Title:  strings.TrimSpace(title),
		Number: strings.TrimSpace(number),
	}
	if err := s.validate.Struct(songInput{Title: song.Title, Number: song.Number}); err != nil {
		return ErrTitleRequired
	}

	s.songs[i] = song
	s.log.Debugw("song edited", "title", song.Title, "index", i)
	return s.flush()
}

// Delete removes the song at index i, shifting later songs down by one.
// It returns the removed song.
func (s *Store) Delete(i int) (model.Song, error) {
	if err := s.checkIndex(i); err != nil {
		return model.Song{}, err
	}
	removed := s.songs[i]
	s.songs = append(s.songs[:i], s.songs[i+1:]...)
	s.log.Debugw("song deleted", "title", removed.Title, "index", i)
	return removed, s.flush()
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.songs) {
		return fmt.Errorf("%w: %d (collection has %d songs)", ErrIndexOutOfRange, i, len(s.songs))
	}
	return nil
}

// flush persists after a mutation when auto-save is on. The mutation
// itself stays applied in memory even if the write fails.
func (s *Store) flush() error {
	if !s.autoSave {
		return nil
	}
	return s.Save()
}

func (s *Store) writeFile(songs []model.Song) error {
	if songs == nil {
		songs = []model.Song{}
	}
	data, err := json.MarshalIndent(songs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode songs: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	// Write to a uniquely named temp file first so a failed write never
	// truncates the existing songs file.
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// decodeSongs parses the persisted JSON array. Entries may be song objects
// (accepting the legacy name/num key aliases), bare strings, or carry a
// numeric number field; anything else is corrupt data.
func decodeSongs(data []byte) ([]model.Song, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	songs := make([]model.Song, 0, len(raw))
	for i, entry := range raw {
		song, err := decodeSong(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptFile, i, err)
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func decodeSong(entry json.RawMessage) (model.Song, error) {
	var title string
	if err := json.Unmarshal(entry, &title); err == nil {
		return model.Song{Title: title}, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(entry, &fields); err != nil {
		return model.Song{}, errors.New("not a song object or string")
	}

	title, ok := fieldString(fields, "title", "name")
	if !ok {
		return model.Song{}, errors.New("missing title")
	}
	number, _ := fieldString(fields, "number", "num")
	return model.Song{Title: title, Number: number}, nil
}

// fieldString returns the first of the named fields present, stringified.
func fieldString(fields map[string]any, names ...string) (string, bool) {
	for _, name := range names {
		value, ok := fields[name]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		case nil:
			return "", true
		}
	}
	return "", false
}
