package questions

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed packs/default.yaml
var defaultPackYAML []byte

// Pack is a curated set of questions loaded from a YAML file. Packs let the
// same engine run hand-written quizzes instead of generated arithmetic.
type Pack struct {
	Name      string
	Questions []*Question
	FilePath  string
}

// yamlPack is the on-disk structure of a pack file.
type yamlPack struct {
	Name      string         `yaml:"name"`
	Questions []yamlQuestion `yaml:"questions"`
}

// yamlQuestion is a single pack entry. Text defaults to "a op b = ?" when
// both operands are present; answer is required.
type yamlQuestion struct {
	Category   string `yaml:"category"`
	Text       string `yaml:"text,omitempty"`
	Answer     *int   `yaml:"answer"`
	Difficulty string `yaml:"difficulty,omitempty"`
	A          int    `yaml:"a,omitempty"`
	B          int    `yaml:"b,omitempty"`
}

// ParsePack parses pack YAML data. Entries with a missing answer or an
// unknown category are rejected; a pack with no valid questions is an error.
func ParsePack(data []byte) (*Pack, error) {
	var yp yamlPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("questions: cannot parse pack: %w", err)
	}

	p := &Pack{Name: yp.Name}
	for i, yq := range yp.Questions {
		cat := Category(yq.Category)
		if yq.Category == "" {
			cat = CategoryAdd
		}
		if !cat.Valid() {
			return nil, fmt.Errorf("questions: pack entry %d: unknown category %q", i+1, yq.Category)
		}
		if yq.Answer == nil {
			return nil, fmt.Errorf("questions: pack entry %d: missing answer", i+1)
		}

		text := yq.Text
		if text == "" {
			text = fmt.Sprintf("%d %s %d = ?", yq.A, cat.Symbol(), yq.B)
		}

		p.Questions = append(p.Questions, &Question{
			ID:         i + 1,
			Category:   cat,
			Text:       text,
			Answer:     *yq.Answer,
			Difficulty: yq.Difficulty,
			A:          yq.A,
			B:          yq.B,
		})
	}

	if len(p.Questions) == 0 {
		return nil, fmt.Errorf("questions: pack %q has no questions", yp.Name)
	}
	return p, nil
}

// LoadPack loads a single pack file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questions: cannot read pack %s: %w", path, err)
	}
	p, err := ParsePack(data)
	if err != nil {
		return nil, err
	}
	p.FilePath = path
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadPackDir loads every .yaml/.yml pack under dir, sorted by name for
// deterministic ordering. Invalid files are skipped, not fatal.
func LoadPackDir(dir string) ([]*Pack, error) {
	var packs []*Pack

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, err := LoadPack(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		packs = append(packs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("questions: walking pack directory %s: %w", dir, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Name < packs[j].Name
	})
	return packs, nil
}

// DefaultPack returns the embedded built-in pack.
func DefaultPack() (*Pack, error) {
	p, err := ParsePack(defaultPackYAML)
	if err != nil {
		return nil, err
	}
	p.Name = "built-in"
	return p, nil
}

// Deck builds a shuffled deck over the pack's questions.
func (p *Pack) Deck(rng *rand.Rand) *Deck {
	return NewDeck(p.Questions, rng)
}
