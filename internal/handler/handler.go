package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// BlogHandler serves the HTML pages of the blog.
type BlogHandler struct {
	userUseCase    usecase.UserUseCase
	postUseCase    usecase.PostUseCase
	sessionUseCase usecase.SessionUseCase
	sessionTTL     time.Duration
	tmpl           *template.Template
	logger         *slog.Logger
}

// NewBlogHandler creates a new BlogHandler with the embedded templates parsed.
func NewBlogHandler(
	users usecase.UserUseCase,
	posts usecase.PostUseCase,
	sessions usecase.SessionUseCase,
	sessionTTL time.Duration,
	logger *slog.Logger,
) (*BlogHandler, error) {
	tmpl, err := newTemplates()
	if err != nil {
		return nil, err
	}
	return &BlogHandler{
		userUseCase:    users,
		postUseCase:    posts,
		sessionUseCase: sessions,
		sessionTTL:     sessionTTL,
		tmpl:           tmpl,
		logger:         logger,
	}, nil
}

func (h *BlogHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("internal server error", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Root redirects to the home page.
func (h *BlogHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Home renders the post listing together with the registered users.
func (h *BlogHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postUseCase.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, http.StatusOK, "home.html", &ViewData{
		Title:       "Home",
		CurrentUser: IdentityFromContext(r.Context()),
		Posts:       posts,
		Users:       users,
	})
}

// About renders the static about page.
func (h *BlogHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about.html", &ViewData{
		Title:       "About",
		CurrentUser: IdentityFromContext(r.Context()),
	})
}

// LoginPage renders the login form.
func (h *BlogHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html", &ViewData{Title: "Login"})
}

// Login authenticates the submitted credentials and establishes a session.
// Failures re-render the form with one generic message: the response does not
// reveal whether the email or the password was wrong.
func (h *BlogHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userUseCase.Authenticate(r.Context(), email, password)
	if err != nil {
		data := &ViewData{
			Title:    "Login",
			FormData: map[string]string{"email": email},
		}
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			data.FormError = usecase.ErrInvalidCredentials.Error()
		} else {
			h.logger.Error("login failed", "error", err)
			data.FormError = "Something went wrong, please try again"
		}
		h.render(w, http.StatusOK, "login.html", data)
		return
	}

	if !h.establishSession(w, r, user) {
		return
	}
	http.Redirect(w, r, auth.LandingPath(user), http.StatusFound)
}

// RegisterPage renders the registration form.
func (h *BlogHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "register.html", &ViewData{Title: "Register"})
}

// Register creates a new account, establishes a session for it and redirects
// per role. Each failure kind re-renders the form with its own message.
func (h *BlogHandler) Register(w http.ResponseWriter, r *http.Request) {
	in := usecase.RegisterInput{
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		RequestedAdmin:  r.FormValue("usertype") == "admin",
	}

	user, err := h.userUseCase.Register(r.Context(), in)
	if err != nil {
		data := &ViewData{
			Title: "Register",
			FormData: map[string]string{
				"username": in.Username,
				"email":    in.Email,
			},
		}
		if isRegistrationError(err) {
			data.FormError = err.Error()
		} else {
			h.logger.Error("registration failed", "error", err)
			data.FormError = "Something went wrong, please try again"
		}
		h.render(w, http.StatusOK, "register.html", data)
		return
	}

	if !h.establishSession(w, r, user) {
		return
	}
	http.Redirect(w, r, auth.LandingPath(user), http.StatusFound)
}

// Logout destroys the current session. The route requires a session, so an
// anonymous request never reaches this handler.
func (h *BlogHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token != "" {
		if err := h.sessionUseCase.Logout(r.Context(), token); err != nil {
			h.logger.Error("failed to destroy session", "error", err)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/home", http.StatusFound)
}

// PublishPage renders the post form.
func (h *BlogHandler) PublishPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "publish.html", &ViewData{
		Title:       "New Post",
		CurrentUser: IdentityFromContext(r.Context()),
	})
}

// Publish creates a post owned by the current identity.
func (h *BlogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if !auth.CanPublish(identity) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		h.render(w, http.StatusOK, "publish.html", &ViewData{
			Title:       "New Post",
			CurrentUser: identity,
			FormError:   "Title and content are required",
			FormData:    map[string]string{"title": title, "content": content},
		})
		return
	}

	if _, err := h.postUseCase.Publish(r.Context(), identity, title, content); err != nil {
		h.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Admin renders the user list for admins and sends everyone else home.
func (h *BlogHandler) Admin(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if !auth.CanViewAdmin(identity) {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, http.StatusOK, "admin.html", &ViewData{
		Title:       "Admin",
		CurrentUser: identity,
		Users:       users,
	})
}

// establishSession logs user in and installs the session cookie. On failure
// it redirects to the login page and reports false.
func (h *BlogHandler) establishSession(w http.ResponseWriter, r *http.Request, user *domain.User) bool {
	session, err := h.sessionUseCase.Login(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to establish session", "user_id", user.ID, "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return false
	}
	setSessionCookie(w, session.Token, h.sessionTTL)
	return true
}

// isRegistrationError reports whether err is one of the registration failure
// kinds whose message is meant for the user.
func isRegistrationError(err error) bool {
	return errors.Is(err, usecase.ErrDuplicateUsername) ||
		errors.Is(err, usecase.ErrDuplicateEmail) ||
		errors.Is(err, usecase.ErrPasswordTooShort) ||
		errors.Is(err, usecase.ErrPasswordMismatch)
}
