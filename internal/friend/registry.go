package friend

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Common errors
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("friend not found")
	ErrDuplicateID = errors.New("friend id already in use")
)

// maxIDAttempts bounds how often a colliding generated id is regenerated
const maxIDAttempts = 5

// Selection records which friend, if any, is currently active
type Selection struct {
	FriendID string
}

// Active reports whether a friend is selected
func (s Selection) Active() bool {
	return s.FriendID != ""
}

// Registry holds the ordered list of friends and the current selection.
// It is not safe for concurrent use; callers serialize access.
type Registry struct {
	friends   []Friend
	selection Selection
	ids       IDGenerator
}

// NewRegistry creates an empty registry using ids to name new friends
func NewRegistry(ids IDGenerator) *Registry {
	return &Registry{ids: ids}
}

// AddFriend creates a friend with a zero balance and appends it to the list
func (r *Registry) AddFriend(name, imageTemplate string) (Friend, error) {
	name = strings.TrimSpace(name)
	imageTemplate = strings.TrimSpace(imageTemplate)

	if name == "" {
		return Friend{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if imageTemplate == "" {
		return Friend{}, fmt.Errorf("%w: image is required", ErrValidation)
	}

	id, err := r.freshID()
	if err != nil {
		return Friend{}, err
	}

	image, err := imageURL(imageTemplate, id)
	if err != nil {
		return Friend{}, err
	}

	f := Friend{
		ID:      id,
		Name:    name,
		Image:   image,
		Balance: 0,
	}
	r.friends = append(r.friends, f)

	return f, nil
}

// Seed appends already built friends, keeping their ids and balances
func (r *Registry) Seed(friends ...Friend) error {
	for _, f := range friends {
		if f.ID == "" || strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: seeded friend needs an id and a name", ErrValidation)
		}
		if r.has(f.ID) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, f.ID)
		}
		r.friends = append(r.friends, f)
	}
	return nil
}

// Select toggles the selection: selecting the selected friend clears it
func (r *Registry) Select(f Friend) Selection {
	if r.selection.FriendID == f.ID {
		r.selection = Selection{}
	} else {
		r.selection = Selection{FriendID: f.ID}
	}
	return r.selection
}

// Selection returns the current selection
func (r *Registry) Selection() Selection {
	return r.selection
}

// CurrentSelection returns the selected friend
func (r *Registry) CurrentSelection() (Friend, bool) {
	if !r.selection.Active() {
		return Friend{}, false
	}
	f, _, ok := r.find(r.selection.FriendID)
	return f, ok
}

// ApplyBalanceDelta adds delta to the balance of the friend with the given id.
// The stored record is replaced, so copies handed out earlier keep their values.
func (r *Registry) ApplyBalanceDelta(id string, delta float64) (Friend, error) {
	f, idx, ok := r.find(id)
	if !ok {
		return Friend{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := f.withBalance(delta)
	r.friends[idx] = updated

	return updated, nil
}

// Get retrieves a friend by id
func (r *Registry) Get(id string) (Friend, error) {
	f, _, ok := r.find(id)
	if !ok {
		return Friend{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return f, nil
}

// Friends returns a copy of all friends in insertion order
func (r *Registry) Friends() []Friend {
	out := make([]Friend, len(r.friends))
	copy(out, r.friends)
	return out
}

// Len returns the number of friends
func (r *Registry) Len() int {
	return len(r.friends)
}

func (r *Registry) find(id string) (Friend, int, bool) {
	return lo.FindIndexOf(r.friends, func(f Friend) bool {
		return f.ID == id
	})
}

func (r *Registry) has(id string) bool {
	return lo.ContainsBy(r.friends, func(f Friend) bool {
		return f.ID == id
	})
}

// freshID asks the generator for an id that is not in use yet
func (r *Registry) freshID() (string, error) {
	for range maxIDAttempts {
		id := r.ids.NewID()
		if id != "" && !r.has(id) {
			return id, nil
		}
	}
	return "", ErrDuplicateID
}

// imageURL appends the friend id to the template as the "u" query parameter
func imageURL(template, id string) (string, error) {
	u, err := url.Parse(template)
	if err != nil {
		return "", fmt.Errorf("%w: invalid image url: %v", ErrValidation, err)
	}

	q := u.Query()
	q.Set("u", id)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
