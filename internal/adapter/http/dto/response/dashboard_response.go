package response

import "okbikes_admin/internal/usecase"

type DashboardUserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

type DashboardResponse struct {
	TotalUsers      int                     `json:"total_users"`
	VerifiedUsers   int                     `json:"verified_users"`
	UnverifiedUsers int                     `json:"unverified_users"`
	TotalBookings   int                     `json:"total_bookings"`
	TotalBikes      int                     `json:"total_bikes"`
	TotalStores     int                     `json:"total_stores"`
	Users           []DashboardUserResponse `json:"users"`
	RecentBookings  []BookingResponse       `json:"recent_bookings"`
	TodaysBookings  []BookingResponse       `json:"todays_bookings"`
	OngoingBookings []BookingResponse       `json:"ongoing_bookings"`
}

func FromDashboard(s usecase.DashboardStats) DashboardResponse {
	res := DashboardResponse{
		TotalUsers:      s.TotalUsers,
		VerifiedUsers:   s.VerifiedUsers,
		UnverifiedUsers: s.UnverifiedUsers,
		TotalBookings:   s.TotalBookings,
		TotalBikes:      s.TotalBikes,
		TotalStores:     s.TotalStores,
		Users:           make([]DashboardUserResponse, 0, len(s.Users)),
		RecentBookings:  make([]BookingResponse, 0, len(s.RecentBookings)),
		TodaysBookings:  make([]BookingResponse, 0, len(s.TodaysBookings)),
		OngoingBookings: make([]BookingResponse, 0, len(s.OngoingBookings)),
	}
	for _, u := range s.Users {
		res.Users = append(res.Users, DashboardUserResponse{ID: u.ID, Name: u.Name, Email: u.Email, IsVerified: u.IsVerified})
	}
	for _, b := range s.RecentBookings {
		res.RecentBookings = append(res.RecentBookings, FromBooking(b))
	}
	for _, b := range s.TodaysBookings {
		res.TodaysBookings = append(res.TodaysBookings, FromBooking(b))
	}
	for _, b := range s.OngoingBookings {
		res.OngoingBookings = append(res.OngoingBookings, FromBooking(b))
	}
	return res
}
