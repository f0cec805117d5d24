package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/teakeeper/internal/common"
)

type credentialsRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type userInfoResponse struct {
	UserID int `json:"userId"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, req *http.Request) {

	var body credentialsRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Phone == "" || body.Password == "" {
		respondError(w, http.StatusBadRequest, "phone and password are required")
		return
	}

	account, err := s.accounts.SignUp(req.Context(), body.Phone, body.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondError(w, http.StatusBadRequest, "user already exists")
			return
		}
		s.logger.Error(req.Context(), "signup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	s.logger.Info(req.Context(), "user registered", "phone", body.Phone)
	writeJSON(w, http.StatusCreated, signupResponse{
		Message: "user registered successfully",
		UserID:  account.DisplayID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {

	var body credentialsRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.accounts.Login(req.Context(), body.Phone, body.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(req.Context(), "login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Message: "login successful"})
}

func (s *Server) handleUserInfo(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	account, err := s.accounts.GetByID(req.Context(), principalID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error(req.Context(), "user info failed", "error", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, userInfoResponse{UserID: account.DisplayID})
}
