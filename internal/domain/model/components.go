package model

// Components are the architecture nouns found in a design document.
type Components struct {
	Services      []string
	Databases     []string
	Caches        []string
	Queues        []string
	Storage       []string
	CDN           []string
	LoadBalancers []string
}
