package response

// SaleRecordedResponse is the body of the legacy POST /sale endpoint.
type SaleRecordedResponse struct {
	Message string `json:"message"`
}
