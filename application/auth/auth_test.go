package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/expenzo/expenzo-backend/application/auth"
	"github.com/expenzo/expenzo-backend/cmd/config"
	"github.com/expenzo/expenzo-backend/constant"
	otpmocks "github.com/expenzo/expenzo-backend/mocks/repository/otp"
	txmocks "github.com/expenzo/expenzo-backend/mocks/repository/tx"
	usermocks "github.com/expenzo/expenzo-backend/mocks/repository/user"
	mailermocks "github.com/expenzo/expenzo-backend/mocks/thirdparty/mailer"
	"github.com/expenzo/expenzo-backend/model"
	cerr "github.com/expenzo/expenzo-backend/utils/errors"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			SessionExpTime: 24 * time.Hour,
			ResetExpTime:   time.Hour,
			OTPExpTime:     10 * time.Minute,
		},
		Email: config.EmailConfig{
			FrontendURL: "http://localhost:5173",
		},
	}
}

// signTestToken builds a token the way the service signs them, for flows
// where a token is an input rather than an output.
func signTestToken(t *testing.T, userID, email, name, tokenType string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"sub":   userID,
		"exp":   jwt.NewNumericDate(time.Now().Add(expiresIn)),
		"iat":   jwt.NewNumericDate(time.Now()),
	}
	if name != "" {
		claims["name"] = name
	}
	if tokenType != "" {
		claims["type"] = tokenType
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func TestAuthApp_SendOTP(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	req := &model.SendOTPRequest{Name: "Ann", Email: "A@X.com", Password: "Abc123"}

	tests := []struct {
		name        string
		cfg         *config.Config
		mockCall    func(f fields)
		wantMessage string
		wantWarning string
		wantDevOTP  bool
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "error: email already registered",
			cfg:  testConfig(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(&model.UserEntity{ID: 1, Email: "a@x.com", Verified: true}, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrUserExists,
		},
		{
			name: "success: otp stored and emailed",
			cfg:  testConfig(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
				f.otpRepo.
					On("Replace", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantMessage: "OTP sent to your email. Please check your inbox.",
		},
		{
			name: "success: dispatch failure with dev fallback returns the code",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Email.DevOTPFallback = true
				return cfg
			}(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
				f.otpRepo.
					On("Replace", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(errors.New("smtp down")).
					Once()
			},
			wantMessage: "OTP sent to email",
			wantWarning: "Email not configured. Using dev mode.",
			wantDevOTP:  true,
		},
		{
			name: "success: dispatch failure without fallback keeps the code private",
			cfg:  testConfig(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
				f.otpRepo.
					On("Replace", mock.Anything, mock.Anything).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(errors.New("smtp down")).
					Once()
			},
			wantMessage: "OTP sent to email",
		},
		{
			name: "error: user lookup fails",
			cfg:  testConfig(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appauth.NewAuthApp(tt.cfg, f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.SendOTP(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SendOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}

			if got.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.Warning != tt.wantWarning {
				t.Fatalf("warning = %q, want %q", got.Warning, tt.wantWarning)
			}
			if tt.wantDevOTP && len(got.DevOTP) != constant.OTPLength {
				t.Fatalf("devOTP = %q, want %d digits", got.DevOTP, constant.OTPLength)
			}
			if !tt.wantDevOTP && got.DevOTP != "" {
				t.Fatalf("devOTP leaked: %q", got.DevOTP)
			}
		})
	}
}

func TestAuthApp_VerifyOTP(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	pending := func() *model.OTPEntity {
		return &model.OTPEntity{
			ID:        42,
			Email:     "a@x.com",
			Code:      "123456",
			Name:      "Ann",
			Password:  "Abc123",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}
	}

	tests := []struct {
		name        string
		req         *model.VerifyOTPRequest
		mockCall    func(f fields)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "error: no pending otp for email",
			req:  &model.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"},
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrOTPNotFound,
		},
		{
			name: "error: expired code is purged",
			req:  &model.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"},
			mockCall: func(f fields) {
				expired := pending()
				expired.ExpiresAt = time.Now().Add(-time.Minute)
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(expired, nil).
					Once()
				f.otpRepo.
					On("DeleteByID", mock.Anything, uint64(42)).
					Return(nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrOTPExpired,
		},
		{
			name: "error: wrong code leaves the otp in place",
			req:  &model.VerifyOTPRequest{Email: "a@x.com", OTP: "654321"},
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(pending(), nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrOTPInvalid,
		},
		{
			name: "success: creates verified user and returns a session token",
			req:  &model.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"},
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(pending(), nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.otpRepo.
					On("DeleteByIDTx", mock.Anything, mock.Anything, uint64(42)).
					Return(int64(1), nil).
					Once()
				f.userRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(2).(*model.UserEntity).ID = 7
					}).
					Return(nil, nil).
					Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: concurrent verify already consumed the code",
			req:  &model.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"},
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(pending(), nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.otpRepo.
					On("DeleteByIDTx", mock.Anything, mock.Anything, uint64(42)).
					Return(int64(0), nil).
					Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrOTPNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			cfg := testConfig()
			app := appauth.NewAuthApp(cfg, f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.VerifyOTP(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}

			if got.Message != "Registration successful!" {
				t.Fatalf("message = %q", got.Message)
			}
			if got.Token == "" {
				t.Fatal("token is empty")
			}
			if got.User.ID != 7 || got.User.Name != "Ann" || got.User.Email != "a@x.com" {
				t.Fatalf("user = %+v", got.User)
			}

			// The returned token must be usable as a session immediately.
			identity, err := app.ValidateToken(context.Background(), got.Token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}
			if identity.UserID != 7 || identity.Email != "a@x.com" || identity.Name != "Ann" {
				t.Fatalf("identity = %+v", identity)
			}
		})
	}
}

func TestAuthApp_ResendOTP(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	tests := []struct {
		name        string
		mockCall    func(f fields)
		wantMessage string
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "error: no pending registration",
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrNoPendingOTP,
		},
		{
			name: "success: fresh code replaces the old one",
			mockCall: func(f fields) {
				f.otpRepo.
					On("GetByEmail", mock.Anything, "a@x.com").
					Return(&model.OTPEntity{ID: 42, Email: "a@x.com", Code: "123456", Name: "Ann"}, nil).
					Once()
				f.otpRepo.
					On("Replace", mock.Anything, mock.MatchedBy(func(e *model.OTPEntity) bool {
						return e.Email == "a@x.com" && e.Code != "123456" && len(e.Code) == constant.OTPLength
					})).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantMessage: "New OTP sent to your email",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appauth.NewAuthApp(testConfig(), f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.ResendOTP(context.Background(), &model.ResendOTPRequest{Email: "a@x.com"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResendOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}

			if got.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Correct1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	verified := &model.UserEntity{ID: 7, Name: "Ann", Email: "a@x.com", PasswordHash: string(hash), Verified: true}

	tests := []struct {
		name        string
		req         *model.LoginRequest
		mockCall    func(f fields)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "error: unknown email gets the same message as a bad password",
			req:  &model.LoginRequest{Email: "nobody@x.com", Password: "Correct1"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@x.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "Wrong1"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(verified, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidCredentials,
		},
		{
			name: "error: unverified account",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "Correct1"},
			mockCall: func(f fields) {
				unverified := *verified
				unverified.Verified = false
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(&unverified, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrEmailNotVerified,
		},
		{
			name: "success: correct credentials return a session token",
			req:  &model.LoginRequest{Email: "A@X.com", Password: "Correct1"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(verified, nil).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appauth.NewAuthApp(testConfig(), f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}

			if got.Message != "Login successful" {
				t.Fatalf("message = %q", got.Message)
			}
			if got.Token == "" {
				t.Fatal("token is empty")
			}

			identity, err := app.ValidateToken(context.Background(), got.Token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}
			if identity.UserID != 7 || identity.Name != "Ann" {
				t.Fatalf("identity = %+v", identity)
			}
		})
	}
}

func TestAuthApp_ForgotPassword(t *testing.T) {
	const genericMessage = "If an account exists with this email, a password reset link has been sent."

	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
	}{
		{
			name: "success: unknown email returns the generic message without side effects",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
			},
		},
		{
			name: "success: known email stores a token and emails the link",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(&model.UserEntity{ID: 7, Name: "Ann", Email: "a@x.com", Verified: true}, nil).
					Once()
				f.userRepo.
					On("SetResetToken", mock.Anything, uint64(7), mock.Anything, mock.Anything).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appauth.NewAuthApp(testConfig(), f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: "a@x.com"})
			if err != nil {
				t.Fatalf("ForgotPassword() error = %v", err)
			}
			if got.Message != genericMessage {
				t.Fatalf("message = %q", got.Message)
			}
		})
	}
}

func TestAuthApp_ResetPassword(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:   txmocks.NewTxRepository(t),
			userRepo: usermocks.NewUserRepository(t),
			otpRepo:  otpmocks.NewOTPRepository(t),
			mailer:   mailermocks.NewMailer(t),
		}
	}

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		mockCall    func(f fields, token string)
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name: "error: malformed token",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidResetToken,
		},
		{
			name: "error: session token cannot reset a password",
			token: func(t *testing.T) string {
				return signTestToken(t, "7", "a@x.com", "Ann", "", time.Hour)
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidResetToken,
		},
		{
			name: "error: token already used and cleared",
			token: func(t *testing.T) string {
				return signTestToken(t, "7", "a@x.com", "Ann", "reset", time.Hour)
			},
			mockCall: func(f fields, token string) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(&model.UserEntity{ID: 7, Name: "Ann", Email: "a@x.com"}, nil).
					Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInvalidResetToken,
		},
		{
			name: "success: matching stored token updates the password",
			token: func(t *testing.T) string {
				return signTestToken(t, "7", "a@x.com", "Ann", "reset", time.Hour)
			},
			mockCall: func(f fields, token string) {
				expire := time.Now().Add(30 * time.Minute)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(&model.UserEntity{
						ID:                  7,
						Name:                "Ann",
						Email:               "a@x.com",
						ResetPasswordToken:  &token,
						ResetPasswordExpire: &expire,
					}, nil).
					Once()
				f.userRepo.
					On("ResetPassword", mock.Anything, uint64(7), mock.Anything).
					Return(nil).
					Once()
				f.mailer.
					On("Send", "a@x.com", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			token := tt.token(t)
			if tt.mockCall != nil {
				tt.mockCall(f, token)
			}
			app := appauth.NewAuthApp(testConfig(), f.txRepo, f.userRepo, f.otpRepo, f.mailer)

			got, err := app.ResetPassword(context.Background(), &model.ResetPasswordRequest{Token: token, NewPassword: "NewPass1"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.wantErrType)
				return
			}

			if got.Message != "Password reset successful. You can now log in with your new password." {
				t.Fatalf("message = %q", got.Message)
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	f := struct {
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
		mailer   *mailermocks.Mailer
	}{
		txmocks.NewTxRepository(t),
		usermocks.NewUserRepository(t),
		otpmocks.NewOTPRepository(t),
		mailermocks.NewMailer(t),
	}
	app := appauth.NewAuthApp(testConfig(), f.txRepo, f.userRepo, f.otpRepo, f.mailer)

	t.Run("success: session token yields the caller identity", func(t *testing.T) {
		token := signTestToken(t, "7", "a@x.com", "Ann", "", time.Hour)

		identity, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if identity.UserID != 7 || identity.Email != "a@x.com" || identity.Name != "Ann" {
			t.Fatalf("identity = %+v", identity)
		}
	})

	t.Run("error: reset token is not a session", func(t *testing.T) {
		token := signTestToken(t, "7", "a@x.com", "Ann", "reset", time.Hour)

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("expected error for reset token")
		}
	})

	t.Run("error: expired token", func(t *testing.T) {
		token := signTestToken(t, "7", "a@x.com", "Ann", "", -time.Minute)

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("expected error for expired token")
		}
	})

	t.Run("error: token signed with a different secret", func(t *testing.T) {
		other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "7",
			"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		if _, err := app.ValidateToken(context.Background(), other); err == nil {
			t.Fatal("expected error for foreign signature")
		}
	})
}
