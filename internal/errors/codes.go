package errors

// Error codes returned in the "error" field of every error body.
// Format: CATEGORY_SPECIFIC_DETAIL. Clients map codes to their own copy.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized    = "AUTH_UNAUTHORIZED"     // login required
	AuthInvalidUsername = "AUTH_INVALID_USERNAME" // unknown admin username
	AuthInvalidPassword = "AUTH_INVALID_PASSWORD" // wrong admin password
	AuthTokenInvalid    = "AUTH_TOKEN_INVALID"    // malformed or forged token
	AuthSessionInactive = "AUTH_SESSION_INACTIVE" // logged out session

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationRequired     = "VALIDATION_REQUIRED"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Menu (MENU_) ====================
	MenuProductNotFound   = "MENU_PRODUCT_NOT_FOUND"
	MenuProductInvalid    = "MENU_PRODUCT_INVALID"
	MenuCategoryNotFound  = "MENU_CATEGORY_NOT_FOUND"
	MenuCategoryExists    = "MENU_CATEGORY_EXISTS"
	MenuCategoryInvalid   = "MENU_CATEGORY_INVALID"
	MenuReorderInProgress = "MENU_REORDER_IN_PROGRESS"
	MenuReorderFailed     = "MENU_REORDER_FAILED"

	// ==================== Store (STORE_) ====================
	StoreNotConfigured = "STORE_NOT_CONFIGURED" // writes without a remote store

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutEmptyOrder    = "CHECKOUT_EMPTY_ORDER"
	CheckoutUnknownOption = "CHECKOUT_UNKNOWN_OPTION"

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
