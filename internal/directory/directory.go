package directory

import (
	"context"

	"github.com/hiresync/scheduler/internal/scheduling"
)

// Party identity lives in the main recruitment backend; this service
// only needs existence checks and notification targets for the parties
// it schedules. Entries are provisioned through config until the
// backend exposes a lookup API.

type Entry struct {
	ID       string `yaml:"id"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Chat     int64  `yaml:"chat"`
}

type Config struct {
	Candidates   []Entry `yaml:"candidates"`
	Interviewers []Entry `yaml:"interviewers"`
}

func New(cfg Config) *Static {
	return &Static{
		candidates:   index(cfg.Candidates),
		interviewers: index(cfg.Interviewers),
	}
}

type Static struct {
	candidates   map[string]scheduling.Person
	interviewers map[string]scheduling.Person
}

func (s *Static) Candidate(_ context.Context, id string) (*scheduling.Person, error) {
	return lookup(s.candidates, id), nil
}

func (s *Static) Interviewer(_ context.Context, id string) (*scheduling.Person, error) {
	return lookup(s.interviewers, id), nil
}

func lookup(m map[string]scheduling.Person, id string) *scheduling.Person {
	p, ok := m[id]
	if !ok {
		return nil
	}
	return &p
}

func index(entries []Entry) map[string]scheduling.Person {
	m := make(map[string]scheduling.Person, len(entries))
	for _, e := range entries {
		m[e.ID] = scheduling.Person{
			ID:       e.ID,
			FullName: e.FullName,
			Email:    e.Email,
			Phone:    e.Phone,
			Chat:     e.Chat,
		}
	}
	return m
}

var _ scheduling.Directory = (*Static)(nil)
