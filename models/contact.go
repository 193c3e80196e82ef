package models

// ContactRequest is a visitor's consultation/contact submission. Service
// carries the selected slot description when the request came from the
// booking widget.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}
