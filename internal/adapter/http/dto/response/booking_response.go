package response

import (
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
)

type VehicleSummaryResponse struct {
	ID                 int64  `json:"id"`
	Model              string `json:"model"`
	Brand              string `json:"brand,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	Image              string `json:"image,omitempty"`
}

type PackageResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deposit float64 `json:"deposit"`
}

type ChargeRecordResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type BookingResponse struct {
	BookingID         int64                   `json:"booking_id"`
	UserID            int64                   `json:"user_id"`
	UserName          string                  `json:"user_name,omitempty"`
	UserEmail         string                  `json:"user_email,omitempty"`
	UserPhone         string                  `json:"user_phone,omitempty"`
	Status            string                  `json:"status"`
	StartDate         entities.Timestamp      `json:"start_date"`
	EndDate           entities.Timestamp      `json:"end_date"`
	TotalAmount       float64                 `json:"total_amount"`
	PaymentMode       string                  `json:"payment_mode,omitempty"`
	AddressType       string                  `json:"address_type,omitempty"`
	Address           string                  `json:"address,omitempty"`
	DeliverySelected  bool                    `json:"delivery_selected"`
	Damage            float64                 `json:"damage"`
	Challan           float64                 `json:"challan"`
	AdditionalCharges float64                 `json:"additional_charges"`
	Challans          []ChargeRecordResponse  `json:"challans"`
	Damages           []ChargeRecordResponse  `json:"damages"`
	Vehicle           *VehicleSummaryResponse `json:"vehicle,omitempty"`
	Package           *PackageResponse        `json:"package,omitempty"`
}

func FromBooking(b entities.Booking) BookingResponse {
	res := BookingResponse{
		BookingID:         b.ID,
		UserID:            b.UserID,
		UserName:          b.UserName,
		UserEmail:         b.UserEmail,
		UserPhone:         b.UserPhone,
		Status:            string(b.Status),
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		TotalAmount:       b.TotalAmount,
		PaymentMode:       b.PaymentMode,
		AddressType:       b.AddressType,
		Address:           b.Address,
		DeliverySelected:  b.DeliverySelected,
		Damage:            b.Damage,
		Challan:           b.Challan,
		AdditionalCharges: b.AdditionalCharges,
		Challans:          fromRecords(b.Challans),
		Damages:           fromRecords(b.Damages),
	}
	if v := b.Vehicle; v != nil {
		res.Vehicle = &VehicleSummaryResponse{
			ID:                 v.ID,
			Model:              v.Model,
			Brand:              v.Brand,
			RegistrationNumber: v.VehicleRegistrationNumber,
			Image:              v.Image,
		}
	}
	if p := b.VehiclePackage; p != nil {
		res.Package = &PackageResponse{ID: p.ID, Name: p.Name, Price: p.Price, Deposit: p.Deposit}
	}
	return res
}

func fromRecords(in []entities.ChargeRecord) []ChargeRecordResponse {
	out := make([]ChargeRecordResponse, 0, len(in))
	for _, r := range in {
		out = append(out, ChargeRecordResponse{Description: r.Description, Amount: r.Amount})
	}
	return out
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}

func FromBookingList(l usecase.BookingList) BookingListResponse {
	res := BookingListResponse{
		Bookings:   make([]BookingResponse, 0, len(l.Bookings)),
		Page:       l.Page,
		PageSize:   l.PageSize,
		TotalPages: l.TotalPages,
		Total:      l.Total,
	}
	for _, b := range l.Bookings {
		res.Bookings = append(res.Bookings, FromBooking(b))
	}
	return res
}
