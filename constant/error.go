package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorized
	ErrForbidden
	ErrTooManyRequests
	ErrUserExists
	ErrInvalidCredentials
	ErrEmailNotVerified
	ErrOTPNotFound
	ErrOTPExpired
	ErrOTPInvalid
	ErrNoPendingOTP
	ErrInvalidResetToken
	ErrItemNotFound
	ErrJobNotFound
	ErrBillGroupNotFound
	ErrBudgetNotFound
	ErrNotItemOwner
	ErrNotJobOwner
	ErrPersonNameRequired
	ErrExpenseFieldsRequired
	ErrAmountNotPositive
	ErrCategoryAmountRequired
	ErrInvalidCategory
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorized:           "Authentication required",
	ErrForbidden:              "You are not authorized to perform this action",
	ErrTooManyRequests:        "Too many requests, please try again later",
	ErrUserExists:             "User already exists with this email",
	ErrInvalidCredentials:     "Invalid email or password",
	ErrEmailNotVerified:       "Please verify your email first",
	ErrOTPNotFound:            "No OTP found for this email. Please request a new one.",
	ErrOTPExpired:             "OTP expired. Please request a new one.",
	ErrOTPInvalid:             "Invalid OTP. Please try again.",
	ErrNoPendingOTP:           "No pending registration found for this email",
	ErrInvalidResetToken:      "Invalid or expired reset token",
	ErrItemNotFound:           "Item not found",
	ErrJobNotFound:            "Job not found",
	ErrBillGroupNotFound:      "Bill group not found",
	ErrBudgetNotFound:         "Budget not found",
	ErrNotItemOwner:           "You are not authorized to modify this item",
	ErrNotJobOwner:            "You are not authorized to modify this job",
	ErrPersonNameRequired:     "Person name is required",
	ErrExpenseFieldsRequired:  "Description, amount, and payer are required",
	ErrAmountNotPositive:      "Amount must be greater than 0",
	ErrCategoryAmountRequired: "Category and amount are required",
	ErrInvalidCategory:        "Invalid category",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorized:           http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrTooManyRequests:        http.StatusTooManyRequests,
	ErrUserExists:             http.StatusConflict,
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrEmailNotVerified:       http.StatusUnauthorized,
	ErrOTPNotFound:            http.StatusBadRequest,
	ErrOTPExpired:             http.StatusBadRequest,
	ErrOTPInvalid:             http.StatusBadRequest,
	ErrNoPendingOTP:           http.StatusBadRequest,
	ErrInvalidResetToken:      http.StatusUnauthorized,
	ErrItemNotFound:           http.StatusNotFound,
	ErrJobNotFound:            http.StatusNotFound,
	ErrBillGroupNotFound:      http.StatusNotFound,
	ErrBudgetNotFound:         http.StatusNotFound,
	ErrNotItemOwner:           http.StatusForbidden,
	ErrNotJobOwner:            http.StatusForbidden,
	ErrPersonNameRequired:     http.StatusBadRequest,
	ErrExpenseFieldsRequired:  http.StatusBadRequest,
	ErrAmountNotPositive:      http.StatusBadRequest,
	ErrCategoryAmountRequired: http.StatusBadRequest,
	ErrInvalidCategory:        http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorized:           "0004",
	ErrForbidden:              "0005",
	ErrTooManyRequests:        "0006",
	ErrUserExists:             "0007",
	ErrInvalidCredentials:     "0008",
	ErrEmailNotVerified:       "0009",
	ErrOTPNotFound:            "0010",
	ErrOTPExpired:             "0011",
	ErrOTPInvalid:             "0012",
	ErrNoPendingOTP:           "0013",
	ErrInvalidResetToken:      "0014",
	ErrItemNotFound:           "0015",
	ErrJobNotFound:            "0016",
	ErrBillGroupNotFound:      "0017",
	ErrBudgetNotFound:         "0018",
	ErrNotItemOwner:           "0019",
	ErrNotJobOwner:            "0020",
	ErrPersonNameRequired:     "0021",
	ErrExpenseFieldsRequired:  "0022",
	ErrAmountNotPositive:      "0023",
	ErrCategoryAmountRequired: "0024",
	ErrInvalidCategory:        "0025",
}
