package domain

import "encoding/json"

// NameSet is a set of names that remembers insertion order.
type NameSet struct {
	names []string
	seen  map[string]struct{}
}

// Add puts name into the set and reports whether it was new.
func (s *NameSet) Add(name string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

func (s *NameSet) Has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

func (s *NameSet) Len() int {
	return len(s.names)
}

// Names returns a copy of the members in insertion order.
func (s *NameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s NameSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *NameSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NameSet{}
	for _, n := range names {
		s.Add(n)
	}
	return nil
}

func (s *NameSet) clone() NameSet {
	var c NameSet
	for _, n := range s.names {
		c.Add(n)
	}
	return c
}

type RestaurantOrderSummary struct {
	Restaurant string  `json:"restaurant"`
	Total      int     `json:"total"`
	Successful int     `json:"successful"`
	Canceled   int     `json:"canceled"`
	CanceledBy NameSet `json:"canceled_by"`
}

func (s *RestaurantOrderSummary) clone() RestaurantOrderSummary {
	c := *s
	c.CanceledBy = s.CanceledBy.clone()
	return c
}

// SummaryIndex maps restaurant names to their summaries and iterates in
// the order restaurants were first seen.
type SummaryIndex struct {
	order  []string
	byName map[string]*RestaurantOrderSummary
}

func NewSummaryIndex() *SummaryIndex {
	return &SummaryIndex{byName: make(map[string]*RestaurantOrderSummary)}
}

// Entry returns the summary for restaurant, creating it on first use.
func (i *SummaryIndex) Entry(restaurant string) *RestaurantOrderSummary {
	if s, ok := i.byName[restaurant]; ok {
		return s
	}
	s := &RestaurantOrderSummary{Restaurant: restaurant}
	i.byName[restaurant] = s
	i.order = append(i.order, restaurant)
	return s
}

// Get returns the summary for restaurant. A restaurant without orders
// yields an empty summary carrying the requested name and false.
func (i *SummaryIndex) Get(restaurant string) (RestaurantOrderSummary, bool) {
	if s, ok := i.byName[restaurant]; ok {
		return s.clone(), true
	}
	return RestaurantOrderSummary{Restaurant: restaurant}, false
}

func (i *SummaryIndex) Len() int {
	return len(i.order)
}

func (i *SummaryIndex) Restaurants() []string {
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

// Summaries returns the summaries in first-seen order.
func (i *SummaryIndex) Summaries() []RestaurantOrderSummary {
	out := make([]RestaurantOrderSummary, 0, len(i.order))
	for _, name := range i.order {
		out = append(out, i.byName[name].clone())
	}
	return out
}
