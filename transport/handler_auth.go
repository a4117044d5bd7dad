package transport

import (
	"encoding/json"
	"net/http"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	"github.com/expenzo/expenzo-backend/utils/errors"
	validatorx "github.com/expenzo/expenzo-backend/utils/validator"
)

// SendOTP handler
// @Summary Start registration
// @Description Store a pending registration and email a one-time code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Registration Request"
// @Success 200 {object} model.OTPResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Failure 409 {object} transport.errorBody
// @Router /api/auth/send-otp [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.SendOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Complete registration
// @Description Verify the emailed code, create the account and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verification Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} transport.errorBody
// @Router /api/auth/verify-otp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.VerifyOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ResendOTP handler
// @Summary Resend registration code
// @Description Issue a fresh code for a pending registration
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendOTPRequest true "Resend Request"
// @Success 200 {object} model.OTPResponse
// @Failure 400 {object} transport.errorBody
// @Router /api/auth/resend-otp [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.ResendOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Login with email and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} transport.errorBody
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ForgotPassword handler
// @Summary Request password reset
// @Description Email a reset link; the response never reveals whether the account exists
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} model.MessageResponse
// @Router /api/auth/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.ForgotPassword(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResetPassword handler
// @Summary Reset password
// @Description Set a new password using a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} transport.errorBody
// @Router /api/auth/reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.AuthApp.ResetPassword(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
