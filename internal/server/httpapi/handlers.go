package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/server/models"
	"github.com/connectly/authsvc/internal/server/services"
)

type signupRequest struct {
	FullName string `json:"FullName"`
	UserName string `json:"UserName"`
	Email    string `json:"emailId"`
	Password string `json:"Password"`
}

type signinRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type validationResponse struct {
	ValidationErrors []string `json:"validationErrors"`
}

// signupResponse keeps the historical field names of the public contract,
// including the "Sigin" misspelling clients already depend on.
type signupResponse struct {
	Message   string              `json:"message"`
	Sigin     *models.User        `json:"Sigin"`
	Profile   *models.Profile     `json:"profile"`
	Followers *models.FollowGraph `json:"followers"`
}

type saveAvatarRequest struct {
	Key string `json:"key"`
}

type avatarUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

type avatarDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body", Error: err.Error()})
		return
	}

	result, err := s.auth.Register(r.Context(), &services.RegisterRequest{
		FullName: req.FullName,
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, validationResponse{ValidationErrors: verr.Violations})
		case errors.Is(err, common.ErrDuplicateHandle):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "storage conflict", Error: err.Error()})
		default:
			s.logger.Error(r.Context(), err.Error())
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error", Error: err.Error()})
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", req.UserName)

	s.setAuthCookie(w, result.Token)
	writeJSON(w, http.StatusOK, signupResponse{
		Message:   "Signed Up Successfully",
		Sigin:     result.User,
		Profile:   result.Profile,
		Followers: result.FollowGraph,
	})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {

	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body", Error: err.Error()})
		return
	}

	token, err := s.auth.Login(r.Context(), req.UserName, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "User not found"})
		case errors.Is(err, common.ErrIncorrectPassword):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Incorrect password"})
		default:
			s.logger.Error(r.Context(), err.Error())
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error", Error: err.Error()})
		}
		return
	}

	s.logger.Info(r.Context(), "Signed in", "username", req.UserName)

	s.setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Signed In Successfully"})
}

// handleSignout only runs behind the authentication gate. There is no
// server-side session state to destroy; revocation is cookie deletion.
func (s *Server) handleSignout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (s *Server) handleAvatarUploadURL(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
		return
	}

	key, url, err := s.avatars.GetUploadURL(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, avatarUploadResponse{Key: key, UploadURL: url})
}

func (s *Server) handleSaveAvatar(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
		return
	}

	var req saveAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "key is required"})
		return
	}

	if err := s.avatars.SaveAvatar(r.Context(), userID, req.Key); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "profile not found"})
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Avatar saved"})
}

func (s *Server) handleAvatarDownloadURL(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
		return
	}

	url, err := s.avatars.GetDownloadURL(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "avatar not found"})
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, avatarDownloadResponse{DownloadURL: url})
}
