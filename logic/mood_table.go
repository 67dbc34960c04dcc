package logic

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"mood_parrot/shared"
	"os"
	"strings"
)

type MoodEntry struct {
	Key          string   `yaml:"key"`
	ImagePath    string   `yaml:"image"`
	TriggerWords []string `yaml:"triggers"`
}

type moodsFile struct {
	Moods []MoodEntry `yaml:"moods"`
}

// MoodTable is the ordered, validated mood list. It is never modified after construction.
type MoodTable struct {
	entries    []MoodEntry
	fallbackIx int
}

// DefaultMoods is the table used when no moods file is configured.
func DefaultMoods() []MoodEntry {
	return []MoodEntry{
		{"eating", "eten.png", []string{":bread:", "lunch", "eten"}},
		{"eureka", "eureka.png", []string{":pompom:", "eureka"}},
		{"running", "rennen.png", []string{":dash:", "rennen"}},
		{"puzzled", "verbaasd.png", []string{":thinking_face:"}},
		{"default", "normaal.png", nil},
	}
}

func NewMoodTable(entries []MoodEntry) (*MoodTable, error) {

	if len(entries) == 0 {
		return nil, errors.New("mood table is empty")
	}

	mt := MoodTable{
		entries:    make([]MoodEntry, 0, len(entries)),
		fallbackIx: -1,
	}
	seen := make(map[string]bool)
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("mood #%d has no key", i)
		}
		if seen[e.Key] {
			return nil, fmt.Errorf("duplicate mood key '%s'", e.Key)
		}
		seen[e.Key] = true
		if e.ImagePath == "" {
			return nil, fmt.Errorf("mood '%s' has no image", e.Key)
		}
		// An empty trigger would match every status
		words := make([]string, 0, len(e.TriggerWords))
		for _, w := range e.TriggerWords {
			if w == "" {
				return nil, fmt.Errorf("mood '%s' has an empty trigger word", e.Key)
			}
			words = append(words, strings.ToLower(w))
		}
		if len(words) == 0 {
			if mt.fallbackIx != -1 {
				return nil, fmt.Errorf("moods '%s' and '%s' both have no trigger words; only one fallback is allowed",
					mt.entries[mt.fallbackIx].Key, e.Key)
			}
			mt.fallbackIx = len(mt.entries)
		}
		mt.entries = append(mt.entries, MoodEntry{e.Key, e.ImagePath, words})
	}
	if mt.fallbackIx == -1 {
		return nil, errors.New("mood table has no fallback (a mood without trigger words)")
	}
	return &mt, nil
}

// Resolve returns the key of the first mood whose trigger word occurs in the status text,
// then in the status emoji; the fallback mood if neither matches.
func (mt *MoodTable) Resolve(statusText, statusEmoji string) string {
	if key, ok := mt.match(strings.ToLower(statusText)); ok {
		return key
	}
	// TODO: substring test on emoji codes lets ":dash:" match inside ":dashing_away:"; consider exact match
	if key, ok := mt.match(strings.ToLower(statusEmoji)); ok {
		return key
	}
	return mt.entries[mt.fallbackIx].Key
}

func (mt *MoodTable) match(str string) (string, bool) {
	if str == "" {
		return "", false
	}
	for _, e := range mt.entries {
		for _, w := range e.TriggerWords {
			if strings.Contains(str, w) {
				return e.Key, true
			}
		}
	}
	return "", false
}

func (mt *MoodTable) Entry(key string) (MoodEntry, bool) {
	for _, e := range mt.entries {
		if e.Key == key {
			return copyEntry(e), true
		}
	}
	return MoodEntry{}, false
}

func (mt *MoodTable) Entries() []MoodEntry {
	res := make([]MoodEntry, 0, len(mt.entries))
	for _, e := range mt.entries {
		res = append(res, copyEntry(e))
	}
	return res
}

func (mt *MoodTable) FallbackKey() string {
	return mt.entries[mt.fallbackIx].Key
}

func copyEntry(e MoodEntry) MoodEntry {
	words := make([]string, len(e.TriggerWords))
	copy(words, e.TriggerWords)
	return MoodEntry{e.Key, e.ImagePath, words}
}

// LoadMoodTable builds the table from the configured YAML file, or from DefaultMoods if there is none.
func LoadMoodTable(cfg *shared.Config, logger shared.ILogger) (*MoodTable, error) {

	entries, err := readMoodsFile(cfg.MoodsFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		logger.Warnf("Moods file not found: %s; using built-in moods", cfg.MoodsFile)
	}
	if entries == nil {
		entries = DefaultMoods()
	}

	mt, err := NewMoodTable(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid mood table: %w", err)
	}
	logger.Infof("Loaded %d moods; fallback is '%s'", len(mt.entries), mt.FallbackKey())
	return mt, nil
}

func readMoodsFile(path string) ([]MoodEntry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mf moodsFile
	if err = yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(mf.Moods) == 0 {
		return nil, fmt.Errorf("no moods defined in %s", path)
	}
	return mf.Moods, nil
}
