package models

import "time"

// Booking is the confirmed outcome of a matching flow: the wallet has been
// debited and an activity recorded by the time one of these exists.
type Booking struct {
	ActivityID string      `json:"activityId"`
	WasherID   string      `json:"washerId"`
	WasherName string      `json:"washerName"`
	Vehicle    VehicleType `json:"vehicle"`
	WashType   WashType    `json:"washType"`
	Location   string      `json:"location"`
	Price      int         `json:"price"`
	Debited    int         `json:"debited"`
	CreatedAt  time.Time   `json:"createdAt"`
}
