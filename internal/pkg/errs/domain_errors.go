package errs

// Sentinels shared by the usecase and handler layers
var (
	// Discount errors
	ErrDiscountNotFound   = New("discount not found")
	ErrDuplicatePromoCode = New("promo code already in use")
	ErrDiscountInUse      = New("discount has recorded applications")
	ErrUsageLimitReached  = New("discount usage limit reached")

	// Application errors
	ErrApplicationNotFound = New("discount application not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
