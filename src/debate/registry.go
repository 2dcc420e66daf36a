package debate

// GeneralTopicID identifies the fallback topic assigned when no registered
// topic matches the opening message.
const GeneralTopicID = "general"

// Topic is one debate subject with the position the bot argues for. Topics
// are value types and immutable once the registry is built.
type Topic struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Stance   string   `json:"stance"`
	Evidence []string `json:"evidence"`
	Keywords []string `json:"keywords"`
}

// Registry is a read-only catalog of topics. It is built once at startup
// and shared across all conversations without locking.
type Registry struct {
	topics []Topic
	byID   map[string]Topic
}

// NewRegistry builds a registry from the given topics. Match order during
// classification follows the slice order.
func NewRegistry(topics []Topic) *Registry {
	r := &Registry{
		topics: make([]Topic, len(topics)),
		byID:   make(map[string]Topic, len(topics)),
	}
	copy(r.topics, topics)
	for _, t := range r.topics {
		r.byID[t.ID] = t
	}
	return r
}

// Topics returns the registered topics in match order.
func (r *Registry) Topics() []Topic {
	out := make([]Topic, len(r.topics))
	copy(out, r.topics)
	return out
}

// Lookup returns the topic with the given ID, if registered.
func (r *Registry) Lookup(id string) (Topic, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Len returns the number of registered topics.
func (r *Registry) Len() int {
	return len(r.topics)
}

// DefaultRegistry returns the built-in topic catalog.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultTopics())
}

// DefaultTopics returns the built-in debate topics. Each carries the stance
// the bot commits to on the first turn and an ordered evidence bank that
// replies draw from in round-robin order.
func DefaultTopics() []Topic {
	return []Topic{
		{
			ID:     "climate-change",
			Label:  "climate change",
			Stance: "anthropogenic climate change is real",
			Evidence: []string{
				"97% of climate scientists agree that human activities are the primary cause of current warming",
				"global temperatures have risen consistently over the past century",
				"ice caps are melting at unprecedented rates",
				"extreme weather events are becoming more frequent",
			},
			Keywords: []string{"climate change", "global warming", "environment", "carbon emissions"},
		},
		{
			ID:     "earth-shape",
			Label:  "the shape of the earth",
			Stance: "the earth is demonstrably a globe",
			Evidence: []string{
				"ships disappear hull-first over the horizon in every direction",
				"satellite imagery from dozens of independent space agencies shows a sphere",
				"circumnavigation works along any great circle, which is impossible on a plane",
				"the earth casts a round shadow on the moon during every lunar eclipse",
			},
			Keywords: []string{"flat earth", "earth is flat", "globe", "round earth"},
		},
		{
			ID:     "vaccines",
			Label:  "vaccines",
			Stance: "vaccines are safe and effective",
			Evidence: []string{
				"vaccines have eradicated diseases like smallpox and nearly eliminated polio",
				"rigorous clinical trials prove vaccine safety and efficacy before approval",
				"herd immunity protects people who cannot be vaccinated themselves",
				"the risk of serious vaccine side effects is extremely low compared to the diseases they prevent",
			},
			Keywords: []string{"vaccines", "vaccine", "vaccination", "immunization"},
		},
		{
			ID:     "evolution",
			Label:  "evolution",
			Stance: "evolution by natural selection is established science",
			Evidence: []string{
				"the fossil record documents gradual change across hundreds of millions of years",
				"DNA comparisons show the same nested ancestry the fossil record predicts",
				"speciation has been observed directly in both the lab and the field",
				"antibiotic resistance is evolution happening on a timescale we can watch",
			},
			Keywords: []string{"evolution", "darwin", "natural selection", "species"},
		},
	}
}
