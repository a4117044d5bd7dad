package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/expenzo/expenzo-backend/cmd/config"
	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
	otprepo "github.com/expenzo/expenzo-backend/repository/otp"
	txrepo "github.com/expenzo/expenzo-backend/repository/tx"
	userrepo "github.com/expenzo/expenzo-backend/repository/user"
	"github.com/expenzo/expenzo-backend/thirdparty/mailer"
	"github.com/expenzo/expenzo-backend/utils/errors"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

type AuthApp interface {
	SendOTP(ctx context.Context, req *model.SendOTPRequest) (*model.OTPResponse, error)
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.AuthResponse, error)
	ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.OTPResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.MessageResponse, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.MessageResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
}

type authAppImpl struct {
	config   *config.Config
	txRepo   txrepo.TxRepository
	userRepo userrepo.UserRepository
	otpRepo  otprepo.OTPRepository
	mailer   mailer.Mailer
}

func NewAuthApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, otpRepo otprepo.OTPRepository, mailer mailer.Mailer) AuthApp {
	return &authAppImpl{
		config:   config,
		txRepo:   txRepo,
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
	}
}

const (
	forgotPasswordMessage = "If an account exists with this email, a password reset link has been sent."
	devModeWarning        = "Email not configured. Using dev mode."
)

// generateOTP returns a uniformly random zero-padded 6-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authAppImpl) SendOTP(ctx context.Context, req *model.SendOTPRequest) (*model.OTPResponse, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[SendOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUserExists)
	}

	code, err := generateOTP()
	if err != nil {
		logger.Error("[SendOTP] err generateOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	// Replace purges any previous pending code for the email; at most one
	// registration is in flight per address.
	entity := &model.OTPEntity{
		Email:     email,
		Code:      code,
		Name:      strings.TrimSpace(req.Name),
		Password:  req.Password,
		ExpiresAt: time.Now().Add(s.config.Auth.OTPExpTime),
	}
	if err := s.otpRepo.Replace(ctx, entity); err != nil {
		logger.Error("[SendOTP] err otpRepo.Replace", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if err := s.mailer.Send(email, otpEmailSubject, otpEmailBody(entity.Name, code)); err != nil {
		logger.Warn("[SendOTP] email dispatch failed", zap.String("email", email), zap.String("error", err.Error()))
		if s.config.Email.DevOTPFallback {
			return &model.OTPResponse{
				Message: "OTP sent to email",
				DevOTP:  code,
				Warning: devModeWarning,
			}, nil
		}
		return &model.OTPResponse{Message: "OTP sent to email"}, nil
	}

	return &model.OTPResponse{Message: "OTP sent to your email. Please check your inbox."}, nil
}

func (s *authAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	otpData, err := s.otpRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("[VerifyOTP] err otpRepo.GetByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if otpData == nil {
		return nil, errors.SetCustomError(constant.ErrOTPNotFound)
	}

	if time.Now().After(otpData.ExpiresAt) {
		if err := s.otpRepo.DeleteByID(ctx, otpData.ID); err != nil {
			logger.Error("[VerifyOTP] err delete expired otp", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrOTPExpired)
	}

	if otpData.Code != strings.TrimSpace(req.OTP) {
		// Row stays so the user can retry within the expiry window.
		return nil, errors.SetCustomError(constant.ErrOTPInvalid)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(otpData.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[VerifyOTP] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	newUser := &model.UserEntity{
		Name:         otpData.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Verified:     true,
	}

	// Consuming the code and creating the user commit together. The
	// rows-affected guard makes a concurrent second verify fail not-found
	// instead of double-creating the user.
	consumed := false
	err = txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		rows, err := s.otpRepo.DeleteByIDTx(ctx, tx, otpData.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		consumed = true
		_, err = s.userRepo.CreateTx(ctx, tx, newUser)
		return err
	})
	if err != nil {
		logger.Error("[VerifyOTP] err consume otp", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if !consumed {
		return nil, errors.SetCustomError(constant.ErrOTPNotFound)
	}

	token, err := s.generateToken(newUser, constant.TokenTypeSession, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[VerifyOTP] err generateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if err := s.mailer.Send(newUser.Email, welcomeEmailSubject, welcomeEmailBody(newUser.Name, s.config.Email.FrontendURL)); err != nil {
		logger.Warn("[VerifyOTP] welcome email dispatch failed", zap.String("email", newUser.Email), zap.String("error", err.Error()))
	}

	return &model.AuthResponse{
		Message: "Registration successful!",
		Token:   token,
		User: model.AuthUser{
			ID:    newUser.ID,
			Name:  newUser.Name,
			Email: newUser.Email,
		},
	}, nil
}

func (s *authAppImpl) ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.OTPResponse, error) {
	email := normalizeEmail(req.Email)

	otpData, err := s.otpRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("[ResendOTP] err otpRepo.GetByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if otpData == nil {
		return nil, errors.SetCustomError(constant.ErrNoPendingOTP)
	}

	code, err := generateOTP()
	if err != nil {
		logger.Error("[ResendOTP] err generateOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	otpData.Code = code
	otpData.ExpiresAt = time.Now().Add(s.config.Auth.OTPExpTime)
	if err := s.otpRepo.Replace(ctx, otpData); err != nil {
		logger.Error("[ResendOTP] err otpRepo.Replace", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if err := s.mailer.Send(email, resendEmailSubject, resendEmailBody(otpData.Name, code)); err != nil {
		logger.Warn("[ResendOTP] email dispatch failed", zap.String("email", email), zap.String("error", err.Error()))
		if s.config.Email.DevOTPFallback {
			return &model.OTPResponse{
				Message: "OTP resent",
				DevOTP:  code,
				Warning: devModeWarning,
			}, nil
		}
		return &model.OTPResponse{Message: "OTP resent"}, nil
	}

	return &model.OTPResponse{Message: "New OTP sent to your email"}, nil
}

func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if user == nil {
		// Same message as a password mismatch; never reveal whether the
		// email is registered.
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if !user.Verified {
		return nil, errors.SetCustomError(constant.ErrEmailNotVerified)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.generateToken(user, constant.TokenTypeSession, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err generateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	return &model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: model.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *authAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.MessageResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}
	if user == nil {
		return &model.MessageResponse{Message: forgotPasswordMessage}, nil
	}

	resetToken, err := s.generateToken(user, constant.TokenTypeReset, s.config.Auth.ResetExpTime)
	if err != nil {
		logger.Error("[ForgotPassword] err generateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	expiresAt := time.Now().Add(s.config.Auth.ResetExpTime)
	if err := s.userRepo.SetResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		logger.Error("[ForgotPassword] err userRepo.SetResetToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.config.Email.FrontendURL, resetToken)
	if err := s.mailer.Send(user.Email, resetRequestSubject, resetRequestBody(user.Name, resetLink)); err != nil {
		logger.Warn("[ForgotPassword] email dispatch failed", zap.String("email", user.Email), zap.String("error", err.Error()))
	}

	return &model.MessageResponse{Message: forgotPasswordMessage}, nil
}

func (s *authAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.MessageResponse, error) {
	claims, err := s.parseToken(req.Token)
	if err != nil || claims.Type != constant.TokenTypeReset {
		return nil, errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	// The stored token and expiry must both agree with the presented token;
	// a token already used (and cleared) is rejected even if its signature
	// is still valid.
	if user == nil ||
		user.ResetPasswordToken == nil || *user.ResetPasswordToken != req.Token ||
		user.ResetPasswordExpire == nil || time.Now().After(*user.ResetPasswordExpire) {
		return nil, errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.ID, string(hashedPassword)); err != nil {
		logger.Error("[ResetPassword] err userRepo.ResetPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err)
	}

	if err := s.mailer.Send(user.Email, resetDoneSubject, resetDoneBody(user.Name)); err != nil {
		logger.Warn("[ResetPassword] email dispatch failed", zap.String("email", user.Email), zap.String("error", err.Error()))
	}

	return &model.MessageResponse{Message: "Password reset successful. You can now log in with your new password."}, nil
}
