package store

import (
	"sync"

	"github.com/lithammer/shortuuid/v4"
)

// StoryChoice is one branch a reader can take inside a story segment.
type StoryChoice struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	NextSegment string `json:"nextSegment"`
}

// StorySegment is a continuation of a story reached through a choice.
type StorySegment struct {
	Content string        `json:"content"`
	Choices []StoryChoice `json:"choices"`
}

// Story is an interactive branching story.
type Story struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Preview  string                  `json:"preview"`
	Tags     []string                `json:"tags"`
	Content  string                  `json:"content"`
	Choices  []StoryChoice           `json:"choices"`
	Segments map[string]StorySegment `json:"segments"`
}

// StorySummary is the catalog view of a story, without its content.
type StorySummary struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Preview string   `json:"preview"`
	Tags    []string `json:"tags"`
}

// Summary returns the catalog view of the story.
func (s *Story) Summary() StorySummary {
	return StorySummary{ID: s.ID, Title: s.Title, Preview: s.Preview, Tags: s.Tags}
}

// StoryStore is the keyed repository of interactive stories.
type StoryStore interface {
	List() []*Story
	Get(id string) (*Story, bool)
	Create(story *Story) *Story
}

type memoryStoryStore struct {
	mu      sync.RWMutex
	stories map[string]*Story
	order   []string
}

// NewStoryStore creates an in-memory story store seeded with the catalog.
func NewStoryStore() StoryStore {
	s := &memoryStoryStore{
		stories: make(map[string]*Story),
	}
	for _, story := range seedStories() {
		s.put(story)
	}
	return s
}

func (s *memoryStoryStore) put(story *Story) {
	s.stories[story.ID] = story
	s.order = append(s.order, story.ID)
}

func (s *memoryStoryStore) List() []*Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Story, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.stories[id])
	}
	return out
}

func (s *memoryStoryStore) Get(id string) (*Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	return story, ok
}

func (s *memoryStoryStore) Create(story *Story) *Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	if story.ID == "" {
		story.ID = shortuuid.New()
	}
	s.put(story)
	return story
}

func seedStories() []*Story {
	return []*Story{
		{
			ID:      "1",
			Title:   "La forêt enchantée",
			Preview: "Découvre les secrets d'une forêt magique où les arbres parlent et les animaux ont des pouvoirs...",
			Tags:    []string{"Aventure", "Magie", "Nature"},
			Content: "Il était une fois, au cœur d'une forêt ancienne, un enfant nommé Léo qui adorait explorer la nature...",
			Choices: []StoryChoice{
				{ID: "choice1", Text: "Léo décide de suivre le renard argenté", NextSegment: "segment2"},
				{ID: "choice2", Text: "Léo préfère grimper dans l'arbre parlant", NextSegment: "segment3"},
			},
			Segments: map[string]StorySegment{
				"segment2": {
					Content: "Le renard argenté guide Léo à travers des sentiers cachés, jusqu'à une clairière illuminée par des lucioles géantes...",
					Choices: []StoryChoice{
						{ID: "choice3", Text: "Léo s'approche des lucioles", NextSegment: "segment4"},
						{ID: "choice4", Text: "Léo cherche à communiquer avec le renard", NextSegment: "segment5"},
					},
				},
				"segment3": {
					Content: "En grimpant dans l'arbre parlant, Léo découvre un passage secret dans le tronc qui mène à une cité suspendue...",
					Choices: []StoryChoice{
						{ID: "choice5", Text: "Léo explore la cité suspendue", NextSegment: "segment6"},
						{ID: "choice6", Text: "Léo redescend et cherche un autre chemin", NextSegment: "segment7"},
					},
				},
			},
		},
		{
			ID:      "2",
			Title:   "Le trésor du pirate",
			Preview: "Pars à la recherche d'un trésor caché par le célèbre pirate Barbe-Rouge...",
			Tags:    []string{"Pirates", "Aventure", "Océan"},
			Content: "Sur une île lointaine, une carte au trésor vient d'être découverte par Emma, une jeune aventurière intrépide...",
			Choices: []StoryChoice{
				{ID: "choice1", Text: "Emma décide de suivre le chemin de la plage", NextSegment: "segment2"},
				{ID: "choice2", Text: "Emma préfère traverser la jungle dense", NextSegment: "segment3"},
			},
			Segments: map[string]StorySegment{
				"segment2": {
					Content: "En suivant la plage, Emma découvre une grotte cachée derrière un rocher en forme de crâne...",
					Choices: []StoryChoice{
						{ID: "choice3", Text: "Emma entre dans la grotte mystérieuse", NextSegment: "segment4"},
						{ID: "choice4", Text: "Emma continue le long de la plage", NextSegment: "segment5"},
					},
				},
				"segment3": {
					Content: "La jungle est dense et pleine de bruits étranges. Emma trouve des traces de pas qui semblent récentes...",
					Choices: []StoryChoice{
						{ID: "choice5", Text: "Emma suit les traces de pas", NextSegment: "segment6"},
						{ID: "choice6", Text: "Emma grimpe à un arbre pour avoir une meilleure vue", NextSegment: "segment7"},
					},
				},
			},
		},
	}
}
