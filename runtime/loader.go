package runtime

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"team-chat/errors"
	"team-chat/moderation"

	"github.com/samber/lo"
)

//go:embed censored/*
var censoredFolder embed.FS

// WordList is the merged content of every dictionary found in a folder.
type WordList struct {
	Words     []string
	Languages []string
}

// WordListLoader reads one dictionary per language, named "{lang}.txt".
// Blank lines and lines starting with '#' are skipped.
type WordListLoader struct {
	fsys fs.FS
}

func NewWordListLoader(fsys fs.FS) *WordListLoader {
	return &WordListLoader{fsys: fsys}
}

func (l *WordListLoader) Load(dir string) (WordList, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return WordList{}, fmt.Errorf("read word lists: %w", err)
	}

	var list WordList
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		list.Languages = append(list.Languages, strings.TrimSuffix(entry.Name(), ".txt"))
		if err := l.readWords(path.Join(dir, entry.Name()), unique); err != nil {
			return WordList{}, err
		}
	}
	if len(unique) == 0 {
		return WordList{}, errors.ErrEmptyWords
	}

	list.Words = lo.Keys(unique)
	slices.Sort(list.Words)
	return list, nil
}

func (l *WordListLoader) readWords(name string, into map[string]struct{}) error {
	f, err := l.fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		into[line] = struct{}{}
	}
	return scanner.Err()
}

// LoadModerator builds the moderator from the embedded word lists.
func LoadModerator(log *slog.Logger, charReplacement rune) (*moderation.Moderator, error) {
	return LoadModeratorFrom(log, censoredFolder, "censored", charReplacement)
}

func LoadModeratorFrom(log *slog.Logger, fsys fs.FS, dir string, charReplacement rune) (*moderation.Moderator, error) {
	list, err := NewWordListLoader(fsys).Load(dir)
	if err != nil {
		return nil, err
	}
	log.Info("Censored word lists loaded",
		"languages", strings.Join(list.Languages, ","), "words", len(list.Words))
	return moderation.NewModerator(list.Words, charReplacement, log)
}
