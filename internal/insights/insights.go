package insights

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Article is a published insight: YAML frontmatter plus a markdown body.
type Article struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Topic       string    `yaml:"topic"`
	HTMLContent string    `yaml:"-"`
}

var (
	articles []Article
	mu       sync.RWMutex
)

// LoadAll reads all .md files from dir, parses YAML frontmatter + markdown
// body, and stores them sorted by date descending.
func LoadAll(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	md := goldmark.New()
	var loaded []Article

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}

		a, err := parseArticle(data, md)
		if err != nil {
			continue
		}
		loaded = append(loaded, a)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Date.After(loaded[j].Date)
	})

	mu.Lock()
	articles = loaded
	mu.Unlock()

	return nil
}

func parseArticle(data []byte, md goldmark.Markdown) (Article, error) {
	content := string(data)
	content = strings.TrimPrefix(content, "\xef\xbb\xbf")

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return Article{}, fmt.Errorf("invalid frontmatter")
	}

	var a Article
	if err := yaml.Unmarshal([]byte(parts[1]), &a); err != nil {
		return Article{}, err
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(parts[2])), &buf); err != nil {
		return Article{}, err
	}
	a.HTMLContent = buf.String()

	return a, nil
}

// GetAll returns all articles sorted by date descending.
func GetAll() []Article {
	mu.RLock()
	defer mu.RUnlock()
	result := make([]Article, len(articles))
	copy(result, articles)
	return result
}

// GetBySlug returns an article by its slug, or nil if not found.
func GetBySlug(slug string) *Article {
	mu.RLock()
	defer mu.RUnlock()
	for i := range articles {
		if articles[i].Slug == slug {
			a := articles[i]
			return &a
		}
	}
	return nil
}
