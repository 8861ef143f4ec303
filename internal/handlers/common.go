package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio-backend/internal/services"
	"studio-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// idParam parses the {id} route variable; 0 means missing or malformed.
func idParam(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// serviceError maps service sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message so internals stay internal.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidation(err):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAlreadyApproved):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrHasSubCategories),
		errors.Is(err, services.ErrHasSections):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidTOTPCode),
		errors.Is(err, services.ErrNoTOTPSecret),
		errors.Is(err, services.ErrTOTPNotEnabled):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
