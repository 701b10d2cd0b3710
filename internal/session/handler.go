package session

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fkhayef/eatnsplit/internal/friend"
	"github.com/fkhayef/eatnsplit/internal/split"
	"github.com/fkhayef/eatnsplit/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for the friends list and the split form
type Handler struct {
	service      *Service
	defaultImage string
}

// NewHandler creates a new handler; defaultImage is used when a new friend
// comes without an image
func NewHandler(service *Service, defaultImage string) *Handler {
	return &Handler{service: service, defaultImage: defaultImage}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/friends", h.ListFriends)
	r.Post("/friends", h.AddFriend)
	r.Post("/friends/{id}/select", h.SelectFriend)

	r.Get("/session", h.GetSession)
	r.Post("/session/add-form", h.ToggleAddForm)

	r.Get("/split", h.GetSplit)
	r.Patch("/split", h.UpdateSplit)
	r.Post("/split", h.SubmitSplit)

	return r
}

// ListFriends handles GET /friends
// @Summary      List friends
// @Description  List all friends in insertion order with their balance status
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]FriendResponse}
// @Router       /friends [get]
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot()
	response.JSON(w, http.StatusOK, toFriendResponses(snap.Friends, snap.State.FriendID))
}

// AddFriend handles POST /friends
// @Summary      Add a friend
// @Description  Add a friend with a zero balance; the image defaults to the avatar service
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body AddFriendRequest true "Friend to add"
// @Success      201 {object} response.APIResponse{data=FriendResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /friends [post]
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	image := req.Image
	if image == "" {
		image = h.defaultImage
	}

	f, err := h.service.AddFriend(req.Name, image)
	if err != nil {
		writeError(w, err, "Failed to add friend")
		return
	}

	response.JSON(w, http.StatusCreated, toFriendResponse(f, ""))
}

// SelectFriend handles POST /friends/{id}/select
// @Summary      Toggle friend selection
// @Description  Select a friend to split a bill with; selecting the selected friend clears the selection
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /friends/{id}/select [post]
func (h *Handler) SelectFriend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.service.SelectFriend(id); err != nil {
		writeError(w, err, "Failed to select friend")
		return
	}

	response.JSON(w, http.StatusOK, toSessionResponse(h.service.Snapshot()))
}

// GetSession handles GET /session
// @Summary      Get session state
// @Description  Current mode, selected friend and split form
// @Tags         session
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Router       /session [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, toSessionResponse(h.service.Snapshot()))
}

// ToggleAddForm handles POST /session/add-form
// @Summary      Toggle the add friend form
// @Description  Opens or closes the add friend form; the selected friend is kept
// @Tags         session
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Router       /session/add-form [post]
func (h *Handler) ToggleAddForm(w http.ResponseWriter, r *http.Request) {
	h.service.ToggleAddForm()
	response.JSON(w, http.StatusOK, toSessionResponse(h.service.Snapshot()))
}

// GetSplit handles GET /split
// @Summary      Get the split form
// @Description  Split form of the selected friend
// @Tags         split
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SplitFormResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /split [get]
func (h *Handler) GetSplit(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Form()
	if err != nil {
		writeError(w, err, "Failed to get split form")
		return
	}

	response.JSON(w, http.StatusOK, toSplitFormResponse(view))
}

// UpdateSplit handles PATCH /split
// @Summary      Update the split form
// @Description  Sets bill, payer share and payer in that order; a payer share above the bill is ignored
// @Tags         split
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest true "Fields to change"
// @Success      200 {object} response.APIResponse{data=SplitFormResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /split [patch]
func (h *Handler) UpdateSplit(w http.ResponseWriter, r *http.Request) {
	update, ok := decodeSplitRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.UpdateSplit(update)
	if err != nil {
		writeError(w, err, "Failed to update split form")
		return
	}

	response.JSON(w, http.StatusOK, toSplitFormResponse(view))
}

// SubmitSplit handles POST /split
// @Summary      Split the bill
// @Description  Optionally updates the form, then applies it to the selected friend's balance
// @Tags         split
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest false "Fields to change before submitting"
// @Success      200 {object} response.APIResponse{data=SplitResultResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /split [post]
func (h *Handler) SubmitSplit(w http.ResponseWriter, r *http.Request) {
	update, ok := decodeSplitRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.SplitBill(update)
	if err != nil {
		writeError(w, err, "Failed to split bill")
		return
	}

	resp := &SplitResultResponse{
		Applied: result.Applied,
		Delta:   result.Delta,
	}
	if result.Friend.ID != "" {
		resp.Friend = toFriendResponse(result.Friend, result.Friend.ID)
	}

	response.JSON(w, http.StatusOK, resp)
}

// decodeSplitRequest reads an optional split request body; an empty body
// means no field changes
func decodeSplitRequest(w http.ResponseWriter, r *http.Request) (SplitUpdate, bool) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return SplitUpdate{}, false
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return SplitUpdate{}, false
	}

	update, err := req.ToUpdate()
	if err != nil {
		response.BadRequest(w, err.Error())
		return SplitUpdate{}, false
	}
	return update, true
}

// writeError maps domain errors to HTTP responses
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, friend.ErrValidation), errors.Is(err, split.ErrInvalidPayer):
		response.BadRequest(w, err.Error())
	case errors.Is(err, friend.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNoSelection), errors.Is(err, ErrAddFormOpen), errors.Is(err, friend.ErrDuplicateID):
		response.Conflict(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
