package entities

import "encoding/json"

// BookingStatus is the booking lifecycle state owned by the rental API.
//
// The dashboard may only request the settable states. PENDING and any other
// value the server invents are display-only.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusAccepted  BookingStatus = "BOOKING_ACCEPTED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

var settableStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusAccepted,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// SettableStatuses lists the states a manager can pick, in display order.
func SettableStatuses() []BookingStatus {
	out := make([]BookingStatus, len(settableStatuses))
	copy(out, settableStatuses)
	return out
}

func (s BookingStatus) Settable() bool {
	for _, v := range settableStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// VehiclePackage is the rental package (tariff) attached to a booking.
type VehiclePackage struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deposit float64 `json:"deposit"`
}

// ChargeRecord is a server-side challan or damage assessment.
type ChargeRecord struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Booking is the rental API booking, enriched with the vehicle, package and
// user details the dashboard shows next to it.
type Booking struct {
	ID                int64          `json:"bookingId"`
	UserID            int64          `json:"userId"`
	VehicleID         int64          `json:"vehicleId,omitempty"`
	StartDate         Timestamp      `json:"startDate"`
	EndDate           Timestamp      `json:"endDate"`
	TotalAmount       float64        `json:"totalAmount"`
	AddressType       string         `json:"addressType,omitempty"`
	Address           string         `json:"address,omitempty"`
	DeliverySelected  bool           `json:"deliverySelected"`
	Status            BookingStatus  `json:"status"`
	PaymentMode       string         `json:"paymentMode,omitempty"`
	Damage            float64        `json:"damage"`
	Challan           float64        `json:"challan"`
	AdditionalCharges float64        `json:"additionalCharges"`
	Challans          []ChargeRecord `json:"challans,omitempty"`
	Damages           []ChargeRecord `json:"damages,omitempty"`

	Vehicle        *Vehicle        `json:"vehicle,omitempty"`
	VehiclePackage *VehiclePackage `json:"vehiclePackage,omitempty"`
	Store          json.RawMessage `json:"store,omitempty"`

	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	UserPhone string `json:"userPhone,omitempty"`
}

// BookingDetail is the combined booking payload (/booking/combined/{id}).
type BookingDetail struct {
	Booking        Booking         `json:"booking"`
	Vehicle        Vehicle         `json:"vehicle"`
	Store          json.RawMessage `json:"store"`
	VehiclePackage VehiclePackage  `json:"vehiclePackage"`
}

// WithDetail merges the combined payload into the list entry.
func (b Booking) WithDetail(d BookingDetail) Booking {
	v := d.Vehicle
	p := d.VehiclePackage
	b.Vehicle = &v
	b.VehiclePackage = &p
	b.Store = d.Store
	if b.VehicleID == 0 {
		b.VehicleID = v.ID
	}
	b.Damage = d.Booking.Damage
	b.Challan = d.Booking.Challan
	b.AdditionalCharges = d.Booking.AdditionalCharges
	b.Challans = nonNilRecords(d.Booking.Challans)
	b.Damages = nonNilRecords(d.Booking.Damages)
	return b
}

// WithUser copies the contact fields shown on the booking and the invoice.
func (b Booking) WithUser(u User) Booking {
	b.UserName = u.Name
	b.UserEmail = u.Email
	b.UserPhone = u.PhoneNumber
	return b
}

func (b Booking) VehicleModel() string {
	if b.Vehicle == nil {
		return ""
	}
	return b.Vehicle.Model
}

func (b Booking) VehicleNumber() string {
	if b.Vehicle == nil {
		return ""
	}
	return b.Vehicle.VehicleRegistrationNumber
}

func (b Booking) PackagePrice() float64 {
	if b.VehiclePackage == nil {
		return 0
	}
	return b.VehiclePackage.Price
}

func nonNilRecords(in []ChargeRecord) []ChargeRecord {
	if in == nil {
		return []ChargeRecord{}
	}
	return in
}

// BookingUpdate is the full payload of PUT /booking/{id}.
type BookingUpdate struct {
	VehicleID         int64   `json:"vehicleId"`
	UserID            int64   `json:"userId"`
	PackageID         int64   `json:"packageId"`
	TotalAmount       float64 `json:"totalAmount"`
	AddressType       string  `json:"addressType"`
	DeliveryLocation  string  `json:"deliveryLocation"`
	DeliverySelected  bool    `json:"deliverySelected"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	Damage            float64 `json:"damage"`
	Challan           float64 `json:"challan"`
	AdditionalCharges float64 `json:"additionalCharges"`
}
