package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
	"github.com/ezores/smart-locker-project-sub001/internal/handler/dto"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Edit(ctx context.Context, reservationCode string, change domain.ReservationChange) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationCode, actor string) (*domain.Reservation, error)
	Get(ctx context.Context, reservationCode string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	RegenerateAccessCode(ctx context.Context, reservationCode, actor string) (*domain.Reservation, error)
	ListAccessEvents(ctx context.Context, reservationCode string) ([]*domain.AccessEvent, error)
}

type AccessSvc interface {
	ValidateByToken(ctx context.Context, tokenID, lockerID string) (*domain.AccessDecision, error)
	ValidateByCode(ctx context.Context, accessCode string) (*domain.AccessDecision, error)
}

type Handler struct {
	reservationService ReservationSvc
	accessService      AccessSvc
}

func NewHandler(reservationService ReservationSvc, accessService AccessSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		accessService:      accessService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateReservationInput{
		UserID:    req.UserID,
		LockerID:  req.LockerID,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     req.Notes,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	code := c.Param("code")

	reservation, err := h.reservationService.Get(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	filter := domain.ReservationFilter{
		LockerID: c.Query("locker_id"),
		UserID:   c.Query("user_id"),
		Status:   domain.ReservationStatus(c.Query("status")),
	}

	reservations, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) EditReservation(c *ginext.Context) {
	code := c.Param("code")

	var req dto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	change := domain.ReservationChange{
		Notes: req.Notes,
		Actor: req.Actor,
	}
	if req.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_time format, expected RFC3339",
			})
			return
		}
		change.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_time format, expected RFC3339",
			})
			return
		}
		change.EndTime = &endTime
	}

	reservation, err := h.reservationService.Edit(c.Request.Context(), code, change)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	code := c.Param("code")

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), code, req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) RegenerateAccessCode(c *ginext.Context) {
	code := c.Param("code")

	var req dto.RegenerateAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.RegenerateAccessCode(c.Request.Context(), code, req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListAccessEvents(c *ginext.Context) {
	code := c.Param("code")

	events, err := h.reservationService.ListAccessEvents(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AccessEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToAccessEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Access

func (h *Handler) ValidateAccessByToken(c *ginext.Context) {
	var req dto.TokenAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := h.accessService.ValidateByToken(c.Request.Context(), req.TokenID, req.LockerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(accessStatus(decision), dto.ToAccessDecisionResponse(decision))
}

func (h *Handler) ValidateAccessByCode(c *ginext.Context) {
	var req dto.CodeAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := h.accessService.ValidateByCode(c.Request.Context(), req.AccessCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(accessStatus(decision), dto.ToAccessDecisionResponse(decision))
}

func accessStatus(d *domain.AccessDecision) int {
	if d.Granted {
		return http.StatusOK
	}
	return http.StatusForbidden
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrLockerNotFound),
		errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyStarted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage unavailable, retry later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
