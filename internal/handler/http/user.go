package http

import (
	"net/http"
	"strings"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	pages
	userService user.UserService
}

type usersData struct {
	Users []user.User
}

type userEditData struct {
	User user.User
}

type profileData struct {
	Profile *user.User
}

// List handles GET /admin/users
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	h.show(w, r, view.Page{Name: "users", Title: "nav.users", Data: usersData{Users: users}}, err)
}

// Create handles POST /admin/users
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/users"
	if err := parseForm(r); err != nil {
		h.fail(w, r, "CreateUser", err, back)
		return
	}
	amounts, err := formDecimals(r, "salary")
	if err != nil {
		h.fail(w, r, "CreateUser", err, back)
		return
	}
	quota, err := formInt(r, "leaveQuota")
	if err != nil {
		h.fail(w, r, "CreateUser", err, back)
		return
	}

	req := user.CreateUserRequest{
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		Role:       user.Role(r.PostFormValue("role")),
		Position:   r.PostFormValue("position"),
		Department: r.PostFormValue("department"),
		Phone:      r.PostFormValue("phone"),
		JoinDate:   r.PostFormValue("joinDate"),
		Salary:     amounts["salary"],
	}
	if quota != nil {
		req.LeaveQuota = *quota
	}

	if _, err := h.userService.Create(r.Context(), req); err != nil {
		h.fail(w, r, "CreateUser", err, back)
		return
	}
	h.done(w, r, "flash.user_created", back)
}

// Edit handles GET /admin/users/{id}
func (h *UserHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	h.show(w, r, view.Page{Name: "user_edit", Title: "nav.users", Data: userEditData{User: u}}, err)
}

// Update handles POST /admin/users/{id}
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := "/admin/users/" + id
	if err := parseForm(r); err != nil {
		h.fail(w, r, "UpdateUser", err, back)
		return
	}

	req := user.UpdateUserRequest{
		ID:         id,
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		Role:       user.Role(r.PostFormValue("role")),
		Position:   r.PostFormValue("position"),
		Department: r.PostFormValue("department"),
		Phone:      r.PostFormValue("phone"),
		JoinDate:   r.PostFormValue("joinDate"),
	}
	if strings.TrimSpace(r.PostFormValue("salary")) != "" {
		amounts, err := formDecimals(r, "salary")
		if err != nil {
			h.fail(w, r, "UpdateUser", err, back)
			return
		}
		salary := amounts["salary"]
		req.Salary = &salary
	}
	var err error
	if req.LeaveQuota, err = formInt(r, "leaveQuota"); err != nil {
		h.fail(w, r, "UpdateUser", err, back)
		return
	}
	if req.UsedLeaveQuota, err = formInt(r, "usedLeaveQuota"); err != nil {
		h.fail(w, r, "UpdateUser", err, back)
		return
	}

	if _, err := h.userService.Update(r.Context(), req); err != nil {
		h.fail(w, r, "UpdateUser", err, back)
		return
	}
	h.done(w, r, "flash.user_updated", "/admin/users")
}

// Delete handles POST /admin/users/{id}/delete
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/users"
	id := chi.URLParam(r, "id")
	if self, ok := session.UserFromContext(r.Context()); ok && self.ID.String() == id {
		h.fail(w, r, "DeleteUser", user.ErrCannotDeleteSelf, back)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "DeleteUser", err, back)
		return
	}
	h.done(w, r, "flash.user_deleted", back)
}

// Profile handles GET /profile
func (h *UserHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.sessions.RefreshProfile(ctx, session.IDFromContext(ctx))
	if err != nil {
		profile, _ = session.UserFromContext(ctx)
	}
	h.show(w, r, view.Page{Name: "profile", Title: "nav.profile", Data: profileData{Profile: profile}}, err)
}

// UpdateProfile handles POST /profile
func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	const back = "/profile"
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		h.fail(w, r, "UpdateProfile", err, back)
		return
	}
	photo, err := storage.FormFile(r, "photo", storage.PhotoOptions)
	if err != nil {
		h.fail(w, r, "UpdateProfile", err, back)
		return
	}

	req := user.UpdateProfileRequest{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Phone:    r.PostFormValue("phone"),
		Password: r.PostFormValue("password"),
		Photo:    photo,
	}
	self, _ := session.UserFromContext(ctx)
	if _, err := h.userService.UpdateProfile(ctx, self, req); err != nil {
		h.fail(w, r, "UpdateProfile", err, back)
		return
	}

	// the cached profile feeds the layout and the leave quota
	if _, err := h.sessions.RefreshProfile(ctx, session.IDFromContext(ctx)); err != nil {
		h.fail(w, r, "UpdateProfile", err, back)
		return
	}
	h.done(w, r, "flash.profile_updated", back)
}

func NewUserHandler(renderer *view.Renderer, sessions session.Service, userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		pages:       pages{view: renderer, sessions: sessions},
		userService: userService,
	}
}
