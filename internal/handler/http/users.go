package http

import (
	"encoding/json"
	"net/http"

	"github.com/emarchenko/go-identity/internal/app"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/utils"
	"github.com/emarchenko/go-identity/models"
)

// register is the terminal handler of POST /users/register. The body shape
// has already been checked by the validation middleware; decoding it again
// here cannot fail for the reasons validation guards against.
//
// Responds 201 with the public projection of the new account, or raises:
//   - HTTPError{422, "user already exists"} on a duplicate email
//     (via store.ErrUserAlreadyExists).
//   - HTTPError{500} on anything unanticipated.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		return NewHTTPError(http.StatusUnprocessableEntity, msgInvalidJSON, "register")
	}

	createdUser, err := h.services.UserService.CreateUser(ctx, request)
	if err != nil {
		return err
	}

	log.Debug().Int64("id", createdUser.ID).Str("email", createdUser.Email).Msg("user registered")

	_, err = utils.WriteJSON(w, models.UserResponse{Email: createdUser.Email, ID: createdUser.ID}, http.StatusCreated)
	return err
}

// login is the terminal handler of POST /users/login.
//
// Responds 200 with a freshly signed bearer token, or raises
// HTTPError{401, "authorization error"} for any credential failure; the
// unknown-email and wrong-password cases are indistinguishable by design.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		return NewHTTPError(http.StatusUnprocessableEntity, msgInvalidJSON, "login")
	}

	foundUser, err := h.services.UserService.ValidateCredentials(ctx, credentials)
	if err != nil {
		return err
	}

	token, err := h.services.TokenService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return NewHTTPError(http.StatusInternalServerError, app.MsgInternalError, "login")
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	_, err = utils.WriteJSON(w, models.TokenResponse{JWT: token.SignedString}, http.StatusOK)
	return err
}

// info is the terminal handler of GET /users/info, registered behind the
// auth guard.
//
// Responds 200 with the profile of the resolved identity. A token whose
// subject no longer exists still yields 200, with empty fields: the token
// was valid, the record is simply gone.
func (h *Handler) info(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return ErrNoIdentityInContext
	}

	user, err := h.services.UserService.GetProfile(ctx, identity)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.UserResponse{Email: user.Email, ID: user.ID}, http.StatusOK)
	return err
}
