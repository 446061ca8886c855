package api

// CreateUserRequest 是送往使用者服務的建立請求
// admin、organisationalAdmin、signupType 目前不做驗證，空值時不送出
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	FirstName           string   `json:"firstName" validate:"required" example:"Alice"`
	LastName            string   `json:"lastName" validate:"required" example:"Chen"`
	Email               string   `json:"email" validate:"required,email" example:"alice@example.com"`
	Contact             string   `json:"contact" validate:"required,phone" example:"+886 912-345-678"`
	LicenseName         int      `json:"licenseName" validate:"required,oneof=1 2 3 4 5" example:"3"`
	IsPaymentDone       *bool    `json:"isPaymentDone" validate:"required" example:"false"`
	LicenseValidity     *float64 `json:"licenseValidity" validate:"required" example:"12"`
	Admin               string   `json:"admin,omitempty" example:"1"`
	OrganisationalAdmin string   `json:"organisationalAdmin,omitempty" example:"0"`
	SignupType          string   `json:"signupType,omitempty" example:"individual"`
}
