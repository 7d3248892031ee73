package sessionhandler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/handlers"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/internal/session"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocksessionhandler
type Service interface {
	Start(ctx context.Context, report location.Report) (*session.View, error)
	Get(ctx context.Context, id uuid.UUID) (*session.View, error)
	RetryLocation(ctx context.Context, id uuid.UUID, report location.Report) (*session.View, error)
	Send(ctx context.Context, id uuid.UUID, text string) (*session.View, error)
	End(ctx context.Context, id uuid.UUID) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/sessions", func(sessionRouter chi.Router) {
		sessionRouter.Post("/", apperror.Middleware(h.startHandler))
		sessionRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		sessionRouter.Delete("/{id}", apperror.Middleware(h.endHandler))
		sessionRouter.Post("/{id}/location", apperror.Middleware(h.retryLocationHandler))
		sessionRouter.Post("/{id}/messages", apperror.Middleware(h.sendMessageHandler))
	})
}

// @Tags		sessions
// @Param		request	body		LocationRequest	false	"position reported by the client"
// @Success	201		{object}	session.View
// @Failure	400,500	{object}	apperror.AppError
// @Router		/sessions [post]
func (h *handler) startHandler(w http.ResponseWriter, r *http.Request) error {
	report, err := h.decodeReport(r)
	if err != nil {
		return err
	}

	view, err := h.service.Start(r.Context(), report)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, view)

	return nil
}

// @Tags		sessions
// @Param		id	path		string	true	"session id"
// @Success	200	{object}	session.View
// @Failure	404	{object}	apperror.AppError
// @Router		/sessions/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionID(r)
	if err != nil {
		return err
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		sessions
// @Param		id	path	string	true	"session id"
// @Success	204
// @Failure	404	{object}	apperror.AppError
// @Router		/sessions/{id} [delete]
func (h *handler) endHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionID(r)
	if err != nil {
		return err
	}

	if err := h.service.End(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Tags		sessions
// @Param		id		path		string			true	"session id"
// @Param		request	body		LocationRequest	false	"position reported by the client"
// @Success	200		{object}	session.View
// @Failure	400,404	{object}	apperror.AppError
// @Router		/sessions/{id}/location [post]
func (h *handler) retryLocationHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionID(r)
	if err != nil {
		return err
	}

	report, err := h.decodeReport(r)
	if err != nil {
		return err
	}

	view, err := h.service.RetryLocation(r.Context(), id, report)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		sessions
// @Param		id				path		string				true	"session id"
// @Param		request			body		SendMessageRequest	true	"request body"
// @Success	200				{object}	session.View
// @Failure	400,402,404,409,429	{object}	apperror.AppError
// @Router		/sessions/{id}/messages [post]
func (h *handler) sendMessageHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionID(r)
	if err != nil {
		return err
	}

	var dto SendMessageRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	view, err := h.service.Send(r.Context(), id, dto.Content)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// decodeReport accepts an empty body as "no geolocation support".
func (h *handler) decodeReport(r *http.Request) (location.Report, error) {
	var dto LocationRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return location.Report{}, apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return location.Report{}, apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return dto.ToReport(), nil
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperror.ErrNotFound
	}

	return id, nil
}
