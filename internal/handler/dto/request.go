package dto

type CreateReservationRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	LockerID  string `json:"locker_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
}

type EditReservationRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`
	Actor     string  `json:"actor" binding:"required"`
}

type CancelReservationRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type RegenerateAccessCodeRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type TokenAccessRequest struct {
	TokenID  string `json:"token_id" binding:"required"`
	LockerID string `json:"locker_id" binding:"required"`
}

type CodeAccessRequest struct {
	AccessCode string `json:"access_code" binding:"required,len=8,numeric"`
}
