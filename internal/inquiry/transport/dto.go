// Package transport defines the request and response DTOs for the lead
// intake endpoints. Validation tags mirror what the public forms enforce
// client-side; the service re-checks the business rules on top.
package transport

// InquiryRequest is a buyer inquiry submitted from the property page form.
type InquiryRequest struct {
	Name             string            `json:"name" validate:"max=200"`
	Email            string            `json:"email" validate:"max=320"`
	Phone            string            `json:"phone" validate:"omitempty,max=40"`
	InquiryType      string            `json:"inquiryType" validate:"omitempty,oneof=viewing investment pricing agent other"`
	PreferredContact []string          `json:"preferredContact" validate:"omitempty,dive,oneof=email phone"`
	Language         string            `json:"language" validate:"omitempty,max=10"`
	Message          string            `json:"message" validate:"omitempty,max=5000"`
	PrivacyConsent   bool              `json:"privacyConsent"`
	UTM              map[string]string `json:"utm" validate:"omitempty,max=10"`
}

// ServiceInquiryRequest is an application from a property owner or agent
// for the landing page service, submitted from the agent CTA section.
type ServiceInquiryRequest struct {
	Name            string            `json:"name" validate:"max=200"`
	Email           string            `json:"email" validate:"max=320"`
	PropertyAddress string            `json:"propertyAddress" validate:"max=500"`
	PropertyType    string            `json:"propertyType" validate:"omitempty,max=100"`
	EstimatedValue  string            `json:"estimatedValue" validate:"omitempty,max=100"`
	Message         string            `json:"message" validate:"omitempty,max=5000"`
	Language        string            `json:"language" validate:"omitempty,max=10"`
	UTM             map[string]string `json:"utm" validate:"omitempty,max=10"`
}
