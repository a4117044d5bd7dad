package auth

import "fmt"

const (
	otpEmailSubject     = "Your OTP Code - ExPeNzO Registration"
	resendEmailSubject  = "New OTP Code - ExPeNzO Registration"
	welcomeEmailSubject = "Welcome to ExPeNzO!"
	resetRequestSubject = "Password Reset Request - ExPeNzO"
	resetDoneSubject    = "Password Reset Successful - ExPeNzO"
)

func otpEmailBody(name, code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #1f2937 0%%, #374151 100%%); padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Welcome to ExPeNzO!</h1>
  </div>
  <div style="background: white; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">
    <h2 style="color: #1f2937; margin-top: 0;">Hello %s!</h2>
    <p style="color: #4b5563; font-size: 16px; line-height: 1.6;">
      Thank you for registering with ExPeNzO. To complete your registration, please use the OTP code below:
    </p>
    <div style="background: #f9fafb; border: 2px dashed #d1d5db; border-radius: 8px; padding: 20px; margin: 30px 0; text-align: center;">
      <p style="color: #6b7280; font-size: 14px; margin: 0 0 10px 0;">Your OTP Code:</p>
      <h1 style="color: #1f2937; font-size: 48px; margin: 0; letter-spacing: 8px; font-weight: bold;">%s</h1>
    </div>
    <p style="color: #ef4444; font-size: 14px;">This OTP will expire in 10 minutes</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">
      If you didn't request this code, please ignore this email.
    </p>
  </div>
  <div style="text-align: center; padding: 20px; color: #9ca3af; font-size: 12px;">
    <p>ExPeNzO - Student Finance Management Platform</p>
  </div>
</div>`, name, code)
}

func resendEmailBody(name, code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1f2937;">New OTP Code</h2>
  <p>Hello %s,</p>
  <p>Here is your new OTP code:</p>
  <div style="background: #f9fafb; border: 2px dashed #d1d5db; padding: 20px; margin: 20px 0; text-align: center;">
    <h1 style="color: #1f2937; font-size: 48px; margin: 0; letter-spacing: 8px;">%s</h1>
  </div>
  <p style="color: #ef4444; font-size: 14px;">This OTP will expire in 10 minutes</p>
</div>`, name, code)
}

func welcomeEmailBody(name, frontendURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1f2937;">Welcome to ExPeNzO!</h2>
  <p>Hi %s,</p>
  <p>Your account has been successfully created and verified!</p>
  <p>You can now start using ExPeNzO to manage your finances, explore the marketplace, and much more.</p>
  <div style="margin: 30px 0;">
    <a href="%s"
       style="background-color: #1f2937; color: white; padding: 12px 24px;
              text-decoration: none; border-radius: 5px; display: inline-block;">
      Get Started
    </a>
  </div>
  <p style="color: #6b7280; font-size: 12px;">ExPeNzO - Student Finance Management</p>
</div>`, name, frontendURL)
}

func resetRequestBody(name, resetLink string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1f2937;">Password Reset Request</h2>
  <p>Hello %s,</p>
  <p>You requested to reset your password. Click the button below to reset it:</p>
  <div style="margin: 30px 0;">
    <a href="%s"
       style="background-color: #1f2937; color: white; padding: 12px 24px;
              text-decoration: none; border-radius: 5px; display: inline-block;">
      Reset Password
    </a>
  </div>
  <p>Or copy and paste this link in your browser:</p>
  <p style="color: #6b7280; word-break: break-all;">%s</p>
  <p style="color: #ef4444; font-size: 14px;">This link will expire in 1 hour.</p>
  <p>If you didn't request this, please ignore this email.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
  <p style="color: #6b7280; font-size: 12px;">ExPeNzO - Student Finance Management</p>
</div>`, name, resetLink, resetLink)
}

func resetDoneBody(name string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1f2937;">Password Reset Successful</h2>
  <p>Hello %s,</p>
  <p>Your password has been successfully reset.</p>
  <p>You can now log in with your new password.</p>
  <p style="color: #ef4444; font-size: 14px;">If you didn't make this change, please contact support immediately.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
  <p style="color: #6b7280; font-size: 12px;">ExPeNzO - Student Finance Management</p>
</div>`, name)
}
