// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "github.com/danielhkuo/quickly-poll/models"

// Tally is the set of voters who picked one option.
// It does not know about other tallies; Session keeps a user in at most one.
type Tally struct {
	name   string
	voters []models.User
	seen   map[string]struct{}
}

func NewTally(name string) *Tally {
	return &Tally{
		name: name,
		seen: make(map[string]struct{}),
	}
}

func (t *Tally) Name() string {
	return t.name
}

// AddVoter records a vote. Adding the same user twice counts once.
func (t *Tally) AddVoter(user models.User) {
	if _, ok := t.seen[user.ID]; ok {
		return
	}
	t.seen[user.ID] = struct{}{}
	t.voters = append(t.voters, user)
}

// RemoveVoter drops the user's vote, if any
func (t *Tally) RemoveVoter(user models.User) {
	if _, ok := t.seen[user.ID]; !ok {
		return
	}
	delete(t.seen, user.ID)
	for i, v := range t.voters {
		if v.ID == user.ID {
			t.voters = append(t.voters[:i], t.voters[i+1:]...)
			break
		}
	}
}

func (t *Tally) Has(userID string) bool {
	_, ok := t.seen[userID]
	return ok
}

func (t *Tally) Count() int {
	return len(t.voters)
}

// Voters returns a copy of the voters in the order they voted
func (t *Tally) Voters() []models.User {
	out := make([]models.User, len(t.voters))
	copy(out, t.voters)
	return out
}
