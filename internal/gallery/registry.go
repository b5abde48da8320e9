// Package gallery holds the component stories shown by `glint gallery` and
// the preview: named, documented renderings of each component state.
package gallery

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/glint/internal/components"
)

var (
	// ErrStoryNotFound is returned when no story matches a lookup.
	ErrStoryNotFound = errors.New("story not found")
	// ErrDuplicateStory is returned when a story ID is registered twice.
	ErrDuplicateStory = errors.New("story already registered")
)

// RenderFunc draws a story for the given context.
type RenderFunc func(ctx components.RenderContext) (string, error)

// Story is one documented rendering of a component.
type Story struct {
	// ID is the lookup key, "<group>/<name>" in lower kebab case.
	ID string
	// Group is the component the story belongs to, e.g. "Button".
	Group string
	// Title is the human readable name.
	Title string
	// Docs is markdown shown with --docs.
	Docs string
	// Render draws the story.
	Render RenderFunc
}

// Registry manages the set of stories.
type Registry struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds stories. It stops at the first invalid or duplicate story;
// stories before it stay registered.
func (r *Registry) Register(stories ...Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range stories {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("story %q: id is required", s.Title)
		}
		if s.Render == nil {
			return fmt.Errorf("story %s: render function is required", s.ID)
		}
		if _, exists := r.stories[s.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateStory, s.ID)
		}
		r.stories[s.ID] = s
	}
	return nil
}

// Get retrieves a story by exact ID.
func (r *Registry) Get(id string) (Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stories[id]
	if !ok {
		return Story{}, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}
	return s, nil
}

// List returns all stories ordered by ID.
func (r *Registry) List() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Story, 0, len(r.stories))
	for _, s := range r.stories {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Groups returns the distinct story groups in order.
func (r *Registry) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, s := range r.List() {
		if !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, s.Group)
		}
	}
	return groups
}

// Search ranks stories by fuzzy match of query against their IDs, best
// match first.
func (r *Registry) Search(query string) []Story {
	all := r.List()
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}

	matches := fuzzy.Find(query, ids)
	result := make([]Story, 0, len(matches))
	for _, m := range matches {
		result = append(result, all[m.Index])
	}
	return result
}

// Lookup returns the story with the exact ID, or failing that the best
// fuzzy match.
func (r *Registry) Lookup(query string) (Story, error) {
	if s, err := r.Get(query); err == nil {
		return s, nil
	}
	if found := r.Search(query); len(found) > 0 {
		return found[0], nil
	}
	return Story{}, fmt.Errorf("%w: %s", ErrStoryNotFound, query)
}
