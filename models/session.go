package models

// VehicleType identifies the vehicle category selected for a wash.
type VehicleType string

const (
	VehicleBerline  VehicleType = "Berline"
	VehicleCompacte VehicleType = "Compacte"
	VehicleSUV      VehicleType = "SUV"
)

// WashType identifies the kind of wash requested.
type WashType string

const (
	WashExterior WashType = "exterior"
	WashInterior WashType = "interior"
	WashComplete WashType = "complete"
)

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SessionState is the full in-progress booking context for the session.
// It is owned by the session store; handlers only ever see copies.
type SessionState struct {
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	SelectedLocation       string      `json:"selectedLocation"`
	SelectedLocationCoords *GeoPoint   `json:"selectedLocationCoords,omitempty"`
	SelectedVehicle        VehicleType `json:"selectedVehicle"`
	SelectedWashType       WashType    `json:"selectedWashType"`

	WalletBalance int                 `json:"walletBalance"`
	Activities    []Activity          `json:"activities"`
	Transactions  []WalletTransaction `json:"transactions"`
}
