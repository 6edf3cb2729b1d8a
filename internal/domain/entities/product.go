package entities

import "time"

// Brand (marca) and Category (categoria) are small lookup aggregates the
// catalog references by id. Names are denormalized into Product so catalog
// listings and reports do not need extra reads.

type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"estado"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Active      bool   `json:"estado"`
}

// Product is the catalog entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// WarrantyMonths drives the warranty interval computed at sale time.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Description    string    `json:"descripcion,omitempty"`
	Price          float64   `json:"precio"`
	Stock          int       `json:"stock"`
	BrandID        string    `json:"marca_id"`
	BrandName      string    `json:"marca"`
	CategoryID     string    `json:"categoria_id"`
	CategoryName   string    `json:"categoria"`
	ImageURL       string    `json:"imagen,omitempty"`
	WarrantyMonths int       `json:"garantia,omitempty"`
	Active         bool      `json:"estado"`
	CreatedAt      time.Time `json:"fecha_creacion"`
}

// LowStockThreshold is the strict upper bound for the "bajo stock" bucket in
// inventory reports. Exactly zero units counts as "sin stock".
const LowStockThreshold = 10
