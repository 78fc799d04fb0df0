package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (req *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

type UpdateProductRequest struct {
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (req *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}
