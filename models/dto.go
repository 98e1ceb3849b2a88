package models

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type ReduceQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CreateProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Categories      []string `json:"categories"`
	Rating          float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Stock           int      `json:"stock" binding:"required,gte=0"`
	Details         string   `json:"details"`
	Specifications  string   `json:"specifications"`
	TechnicalInfo   string   `json:"technical_information"`
	PriceOriginal   float64  `json:"price_original" binding:"required,gt=0"`
	PriceDiscounted *float64 `json:"price_discounted" binding:"omitempty,gte=0"`
	SizeOrType      []string `json:"size_or_type"`
}

type UpdateProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Categories      []string `json:"categories"`
	Rating          *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Stock           *int     `json:"stock" binding:"omitempty,gte=0"`
	Details         string   `json:"details"`
	Specifications  string   `json:"specifications"`
	TechnicalInfo   string   `json:"technical_information"`
	PriceOriginal   *float64 `json:"price_original" binding:"omitempty,gt=0"`
	PriceDiscounted *float64 `json:"price_discounted" binding:"omitempty,gte=0"`
	SizeOrType      []string `json:"size_or_type"`
}

type CreateReviewRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Text      string  `json:"review_text" binding:"required"`
	Rating    float64 `json:"review_rating" binding:"required,min=0,max=5"`
}

type UpdateReviewRequest struct {
	Text   string   `json:"review_text"`
	Rating *float64 `json:"review_rating" binding:"omitempty,min=0,max=5"`
}

type AddressRequest struct {
	Title   string `json:"title" binding:"required"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
