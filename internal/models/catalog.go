package models

type CatalogService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServiceCatalog - the fixed set of services the booking form offers.
// ServiceType on a request is free text in the ledger; this list is only
// enforced by the submission surface.
var ServiceCatalog = []CatalogService{
	{ID: "taxi", Name: "Taxi Rides", Description: "Airport pickups, city rides, and transportation services"},
	{ID: "grocery", Name: "Grocery Shopping & Delivery", Description: "We shop and deliver your groceries"},
	{ID: "laundry", Name: "Laundry & Dry-Cleaning", Description: "Pickup, clean, and delivery of your clothes"},
	{ID: "delivery", Name: "Gift & Parcel Delivery", Description: "Same-day delivery of gifts and packages"},
	{ID: "bills", Name: "Utility & Bill Payments", Description: "Pay your bills and utilities on your behalf"},
	{ID: "prescription", Name: "Prescription Runs", Description: "Collect medications from pharmacies"},
	{ID: "errands", Name: "School & Office Errands", Description: "Document collection, submissions, and more"},
	{ID: "airport", Name: "Airport Pickups & Drop-offs", Description: "Reliable airport transportation services"},
	{ID: "senior", Name: "Senior Support & Pet Care", Description: "Assistance for seniors and pet care services"},
}
