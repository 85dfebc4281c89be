package http

import (
	"errors"
	"net/http"

	"github.com/ibeloyar/cupcake/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock_service.go -package=mocks

type OrderService interface {
	State() model.OrderUiState
	PickupOptions() []string
	SetQuantity(numberCupcakes int) model.OrderUiState
	SetFlavor(desiredFlavor string) model.OrderUiState
	SetDate(pickupDate string) model.OrderUiState
	ResetOrder() model.OrderUiState
}

type AuthService interface {
	Snapshot() model.AuthSnapshot
	OnEmailChange(newEmail string)
	OnPasswordChange(newPassword string)
	RegisterNewUser() error
	LoginUser() error
	LogoutUser()
}

type Controller struct {
	order OrderService
	auth  AuthService
	lg    *zap.SugaredLogger
}

func New(o OrderService, a AuthService, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		order: o,
		auth:  a,
		lg:    lg,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.order.State(), http.StatusOK)
}

func (c *Controller) GetPickupOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.order.PickupOptions(), http.StatusOK)
}

func (c *Controller) SetQuantity(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SetQuantityDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	writeJSON(w, c.order.SetQuantity(body.Quantity), http.StatusOK)
}

func (c *Controller) SetFlavor(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SetFlavorDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	writeJSON(w, c.order.SetFlavor(body.Flavor), http.StatusOK)
}

func (c *Controller) SetDate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SetDateDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	writeJSON(w, c.order.SetDate(body.Date), http.StatusOK)
}

func (c *Controller) ResetOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.order.ResetOrder(), http.StatusOK)
}

func (c *Controller) GetAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) SetEmail(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.EmailDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	c.auth.OnEmailChange(body.Email)
	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) SetPassword(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.PasswordDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	c.auth.OnPasswordChange(body.Password)
	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.RegisterNewUser(); err != nil {
		writeJSON(w, c.auth.Snapshot(), authErrorStatus(err))
		return
	}

	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.LoginUser(); err != nil {
		writeJSON(w, c.auth.Snapshot(), authErrorStatus(err))
		return
	}

	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	c.auth.LogoutUser()
	writeJSON(w, c.auth.Snapshot(), http.StatusOK)
}

func (c *Controller) badRequest(w http.ResponseWriter, err error) {
	c.lg.Errorf("failed to parse request body: %v", err)
	http.Error(w, model.ErrInvalidRequestBodyMessage, http.StatusBadRequest)
}

func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
