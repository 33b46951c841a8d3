package models

import "strings"

// FieldErrors maps a form field name to a human-readable message. An empty
// map means the draft is valid.
type FieldErrors map[string]string

// Empty reports whether there are no field errors.
func (e FieldErrors) Empty() bool { return len(e) == 0 }

// ProductDraft is the admin product form before submission. Numeric fields
// use the same units as Product (ml, cents).
type ProductDraft struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Volume        int64  `json:"volume"`
	PricePerUnit  int64  `json:"pricePerUnit"`
	StockQuantity int64  `json:"stockQuantity"`
	IsAvailable   bool   `json:"isAvailable"`
}

// Validate checks the draft without touching the network.
func (d ProductDraft) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.ID) == "" {
		errs["id"] = "Required"
	}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Required"
	}
	if d.Volume <= 0 {
		errs["volume"] = "Must be a positive number"
	}
	if d.PricePerUnit < 0 {
		errs["pricePerUnit"] = "Must be a valid price"
	}
	if d.StockQuantity < 0 {
		errs["stockQuantity"] = "Must be a non-negative number"
	}
	return errs
}

// Trimmed returns a copy with the string fields whitespace-trimmed, which is
// what actually crosses the actor boundary.
func (d ProductDraft) Trimmed() ProductDraft {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	return d
}

// CustomerDraft is the checkout form: who the order is for and how to reach
// them.
type CustomerDraft struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Validate requires both fields to be non-empty after trimming.
func (d CustomerDraft) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(d.Contact) == "" {
		errs["contact"] = "Contact is required"
	}
	return errs
}

// Trimmed returns a copy with both fields whitespace-trimmed.
func (d CustomerDraft) Trimmed() CustomerDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.Contact = strings.TrimSpace(d.Contact)
	return d
}
