package session

import (
	"github.com/samber/lo"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/split"
)

// AddFriendRequest represents the request body for adding a friend
type AddFriendRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image,omitempty"`
}

// SplitRequest represents the request body for updating or submitting the split form
type SplitRequest struct {
	Bill       *float64 `json:"bill,omitempty"`
	PayerShare *float64 `json:"payer_share,omitempty"`
	Payer      *string  `json:"payer,omitempty" validate:"omitempty,oneof=USER FRIEND user friend"`
}

// FriendResponse represents a single friend in a response
type FriendResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Balance  float64 `json:"balance"`
	State    string  `json:"state"`
	Status   string  `json:"status"`
	Selected bool    `json:"selected"`
}

// SplitFormResponse represents the split bill form
type SplitFormResponse struct {
	Bill               *float64 `json:"bill"`
	PayerShare         *float64 `json:"payer_share"`
	FriendShare        float64  `json:"friend_share"`
	Payer              string   `json:"payer"`
	PayerShareRejected bool     `json:"payer_share_rejected,omitempty"`
}

// SessionResponse represents the state of the session
type SessionResponse struct {
	Mode        string             `json:"mode"`
	AddFormOpen bool               `json:"add_form_open"`
	Selected    *FriendResponse    `json:"selected,omitempty"`
	Split       *SplitFormResponse `json:"split,omitempty"`
}

// SplitResultResponse represents the outcome of a split submission
type SplitResultResponse struct {
	Applied bool            `json:"applied"`
	Delta   float64         `json:"delta"`
	Friend  *FriendResponse `json:"friend,omitempty"`
}

// ToUpdate converts the request to a form update; the payer must be validated first
func (r *SplitRequest) ToUpdate() (SplitUpdate, error) {
	update := SplitUpdate{
		Bill:       r.Bill,
		PayerShare: r.PayerShare,
	}
	if r.Payer != nil {
		p, err := split.ParsePayer(*r.Payer)
		if err != nil {
			return SplitUpdate{}, err
		}
		update.Payer = &p
	}
	return update, nil
}

func toFriendResponse(f friend.Friend, selectedID string) *FriendResponse {
	return &FriendResponse{
		ID:       f.ID,
		Name:     f.Name,
		Image:    f.Image,
		Balance:  f.Balance,
		State:    string(f.State()),
		Status:   f.Status(),
		Selected: f.ID == selectedID,
	}
}

func toFriendResponses(friends []friend.Friend, selectedID string) []*FriendResponse {
	return lo.Map(friends, func(f friend.Friend, _ int) *FriendResponse {
		return toFriendResponse(f, selectedID)
	})
}

func toSplitFormResponse(v FormView) *SplitFormResponse {
	return &SplitFormResponse{
		Bill:               v.Bill,
		PayerShare:         v.PayerShare,
		FriendShare:        v.FriendShare,
		Payer:              string(v.Payer),
		PayerShareRejected: v.PayerShareRejected,
	}
}

func toSessionResponse(snap Snapshot) *SessionResponse {
	resp := &SessionResponse{
		Mode:        string(snap.State.Mode),
		AddFormOpen: snap.AddFormOpen,
	}
	if snap.Selected != nil {
		resp.Selected = toFriendResponse(*snap.Selected, snap.Selected.ID)
	}
	if snap.Form != nil {
		resp.Split = toSplitFormResponse(*snap.Form)
	}
	return resp
}
