package handler

const (
	msgServerError        = "Server error"
	msgAllFieldsRequired  = "All fields are required"
	msgEmailTaken         = "Email already registered"
	msgSignupOK           = "Sign up successful"
	msgLoginFieldsMissing = "Email and password are required"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginOK            = "Login successful"
	msgEmailRequired      = "Email is required"
	msgResetGeneric       = "If the email exists, a reset link was sent."
	msgResetLinkSent      = "Reset link sent to your email. Use it within 30 minutes."
	msgResetSendFailed    = "Unable to send reset email"
	msgResetFieldsMissing = "Token and new password are required"
	msgResetTokenInvalid  = "Reset token is invalid or expired"
	msgUserNotFound       = "User not found"
	msgPasswordUpdated    = "Password updated successfully"
	msgInvalidBody        = "Invalid request body"
)
